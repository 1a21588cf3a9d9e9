package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/btouchard/pythva/internal/cache"
	"github.com/btouchard/pythva/internal/converter"
)

var (
	convertOut      string
	convertEnhanced bool
	convertOptimize bool
	convertNoCache  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a Python file to Java-styled output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger()

		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		opts := []converter.Option{converter.WithLogger(log)}
		var c *cache.Cache
		var store *cache.Store
		if convertNoCache {
			cfg.CacheEnabled = false
		} else if cfg.CacheEnabled {
			c = cache.New(cfg.MaxCacheSize)
			if s, err := cache.OpenStore(cacheFile); err != nil {
				log.Warn("cache store unavailable", "error", err)
			} else {
				store = s
				if err := s.LoadInto(c); err != nil {
					log.Warn("cache load failed", "error", err)
				}
			}
			opts = append(opts, converter.WithCache(c))
		}

		cv := converter.New(cfg, opts...)
		res := cv.Convert(string(source), converter.Options{
			Enhanced: convertEnhanced,
			Optimize: convertOptimize,
		})
		for _, w := range res.Warnings {
			log.Warn(w)
		}
		for _, e := range res.Errors {
			log.Error(e)
		}

		if store != nil && c != nil {
			if err := store.SaveFrom(c); err != nil {
				log.Warn("cache save failed", "error", err)
			}
		}

		if convertOut == "" {
			fmt.Println(res.Output)
			return nil
		}
		if dir := filepath.Dir(convertOut); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		if err := os.WriteFile(convertOut, []byte(res.Output+"\n"), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", convertOut, err)
		}
		fmt.Printf("converted %s -> %s\n", args[0], convertOut)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "output file (default: stdout)")
	convertCmd.Flags().BoolVarP(&convertEnhanced, "enhanced", "e", false, "use the mapping-augmented renderer")
	convertCmd.Flags().BoolVar(&convertOptimize, "optimize", false, "run the output optimizer")
	convertCmd.Flags().BoolVar(&convertNoCache, "no-cache", false, "disable the conversion cache")
}

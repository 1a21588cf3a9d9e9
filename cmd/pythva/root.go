package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/btouchard/pythva/internal/config"
)

var (
	configPath string
	cacheFile  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pythva",
	Short: "Convert Python code to Java-styled syntax",
	Long: `Pythva reads Python source and emits a best-effort Java-styled
rendering: brace blocks, semicolons, inferred primitive types, and
standard-library call substitutions.

Commands:
  convert          Convert a Python file
  serve            Run the browser demo server
  create-examples  Write sample Python files into examples/
  cache            Inspect or clear the persistent conversion cache
  init-config      Write a default pythva.yaml
`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: pythva.yaml search path)")
	rootCmd.PersistentFlags().StringVar(&cacheFile, "cache-file", ".pythva_cache.db", "persistent cache database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(convertCmd, serveCmd, createExamplesCmd, cacheCmd, initConfigCmd)
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path = config.Find(wd)
		}
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/btouchard/pythva/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the persistent conversion cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show persistent cache statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.OpenStore(cacheFile)
		if err != nil {
			return err
		}
		n, err := store.Count()
		if err != nil {
			return err
		}
		fmt.Printf("cache file: %s\nentries: %d\n", cacheFile, n)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all persisted cache entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := cache.OpenStore(cacheFile)
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("cache cleared")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
}

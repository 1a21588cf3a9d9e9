package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/btouchard/pythva/internal/config"
)

var initConfigForce bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write a default pythva.yaml in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "pythva.yaml"
		if _, err := os.Stat(path); err == nil && !initConfigForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Default().Save(path); err != nil {
			return err
		}
		fmt.Printf("default config written: %s\n", path)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&initConfigForce, "force", false, "overwrite an existing config file")
}

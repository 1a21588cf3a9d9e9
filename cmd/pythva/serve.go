package main

import (
	"github.com/spf13/cobra"

	"github.com/btouchard/pythva/internal/converter"
	"github.com/btouchard/pythva/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the browser demo server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger()
		cv := converter.New(cfg, converter.WithLogger(log))
		return server.New(cv, log).ListenAndServe(serveAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":5000", "listen address")
}

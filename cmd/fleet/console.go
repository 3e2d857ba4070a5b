package main

import (
	"github.com/spf13/cobra"

	"github.com/techteamdev9/Fleet-Manager/internal/tui"
)

func newConsoleCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Open the interactive console",
		Long:  "Starts the full-screen console with the vehicle table, history panel, stats, and charts. Login happens inside the console.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, err := clientFromConfig(configPath)
			if err != nil {
				return err
			}
			return tui.Run(client)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "fleet.yaml", "path to Fleet Manager config file")
	return cmd
}

package main

import (
	"github.com/dhamidi/sectsv/codebase"
	"github.com/dhamidi/sectsv/config"
	"github.com/spf13/cobra"
)

func newLSPCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := codebase.NewLSPServer(version, cfg.Extensions...)
			return server.RunStdio()
		},
	}
}

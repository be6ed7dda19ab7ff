package main

import (
	"github.com/spf13/cobra"

	"github.com/k2jama/entrain/internal/mcp"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Run the MCP server over stdio",
		Long: `Run an MCP (Model Context Protocol) server exposing entrain's
validation and journey planning tools to agent clients.

The server speaks over stdio and blocks until the client disconnects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			storePath, err := cfg.StorePath()
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(&mcp.Config{
				Name:      "entrain",
				Version:   version,
				StorePath: storePath,
				AuditDir:  cfg.Validation.AuditDir,
				LogLevel:  cfg.Logging.Level,
			})
			if err != nil {
				return err
			}

			return server.Run(cmd.Context())
		},
	}
}

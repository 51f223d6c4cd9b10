package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/draftdesk/internal/logging"
	draftsmcp "github.com/gorewood/draftdesk/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run draftdesk as a Model Context Protocol (MCP) server over stdio.

This is the command surface the front-end talks to. Tools:
  load_drafts      - returns the drafts as a JSON array string ("[]" if none)
  save_drafts      - replaces the drafts with a JSON array string
  get_drafts_path  - returns the absolute path of the drafts file

Failures are reported as tool errors with a human-readable message.
Logs go to stderr; stdout carries the protocol.

Configure in your front-end's MCP settings:
  {
    "mcpServers": {
      "draftdesk": {
        "command": "draftdesk",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := logging.For("serve")
			server := draftsmcp.NewServer(buildVersion(), newStore(cmd), &logger)
			logger.Info().Msg("serving drafts over stdio")
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

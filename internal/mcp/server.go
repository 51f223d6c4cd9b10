// Package mcp exposes the drafts store to front-ends as Model Context Protocol tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gorewood/draftdesk/internal/drafts"
)

// NewServer creates an MCP server with the drafts tools registered.
// If logger is nil, tool failures are not logged.
func NewServer(version string, store *drafts.Store, logger *zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "draftdesk",
		Version: version,
	}, nil)

	log := zerolog.Nop()
	if logger != nil {
		log = logger.With().Str("component", "mcp").Logger()
	}
	registerTools(server, store, log)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// Saving replaces the whole file, so it is destructive but repeatable.
func replaceAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, store *drafts.Store, log zerolog.Logger) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "load_drafts",
		Description: "Load the saved drafts. Returns the collection as a JSON array string; \"[]\" when nothing has been saved yet.",
		Annotations: readOnlyAnnotations(),
	}, handleLoad(store, log))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_drafts",
		Description: "Replace the saved drafts with the given JSON array string. Anything other than a JSON array is rejected and the file is left unchanged.",
		Annotations: replaceAnnotations(),
	}, handleSave(store, log))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_drafts_path",
		Description: "Return the absolute path of the drafts file, creating its directory if needed.",
		Annotations: readOnlyAnnotations(),
	}, handlePath(store, log))
}

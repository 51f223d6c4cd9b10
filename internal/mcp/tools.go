package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/gorewood/draftdesk/internal/drafts"
)

// LoadInput is the input for load_drafts (no parameters).
type LoadInput struct{}

// LoadOutput is the output for load_drafts.
type LoadOutput struct {
	Drafts string `json:"drafts" jsonschema:"the draft collection as a JSON array string"`
}

func handleLoad(store *drafts.Store, log zerolog.Logger) mcp.ToolHandlerFor[LoadInput, LoadOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ LoadInput) (*mcp.CallToolResult, LoadOutput, error) {
		data, err := store.Load()
		if err != nil {
			logFailure(log, "load_drafts", err)
			return nil, LoadOutput{}, err
		}
		return nil, LoadOutput{Drafts: data}, nil
	}
}

// SaveInput is the input for save_drafts.
type SaveInput struct {
	Data string `json:"data" jsonschema:"the full draft collection as a JSON array string"`
}

// SaveOutput is the output for save_drafts.
type SaveOutput struct {
	Saved bool   `json:"saved" jsonschema:"true when the file was written"`
	Path  string `json:"path"  jsonschema:"absolute path of the drafts file"`
}

func handleSave(store *drafts.Store, log zerolog.Logger) mcp.ToolHandlerFor[SaveInput, SaveOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SaveInput) (*mcp.CallToolResult, SaveOutput, error) {
		if err := store.Save(input.Data); err != nil {
			logFailure(log, "save_drafts", err)
			return nil, SaveOutput{}, err
		}
		path, err := store.Location()
		if err != nil {
			logFailure(log, "save_drafts", err)
			return nil, SaveOutput{}, err
		}
		return nil, SaveOutput{Saved: true, Path: path}, nil
	}
}

// PathInput is the input for get_drafts_path (no parameters).
type PathInput struct{}

// PathOutput is the output for get_drafts_path.
type PathOutput struct {
	Path string `json:"path" jsonschema:"absolute path of the drafts file"`
}

func handlePath(store *drafts.Store, log zerolog.Logger) mcp.ToolHandlerFor[PathInput, PathOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ PathInput) (*mcp.CallToolResult, PathOutput, error) {
		path, err := store.Location()
		if err != nil {
			logFailure(log, "get_drafts_path", err)
			return nil, PathOutput{}, err
		}
		return nil, PathOutput{Path: path}, nil
	}
}

func logFailure(log zerolog.Logger, tool string, err error) {
	log.Warn().Err(err).Str("tool", tool).Str("kind", drafts.KindOf(err).String()).Msg("tool failed")
}

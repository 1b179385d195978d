package tools

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/filetype"
	"github.com/halvard/librarian-mcp/index"
)

// serverVersion is reported by the config tool.
const serverVersion = "0.1.0"

// ConfigArgs defines the input parameters for the librarian_config tool (none required).
type ConfigArgs struct{}

// ConfigHandler holds the dependencies for the config tool.
type ConfigHandler struct {
	Indexer *index.Indexer
	Logger  *slog.Logger
}

type serverConfig struct {
	RepositoryPath     string   `json:"repository_path"`
	IndexPath          string   `json:"index_path"`
	Version            string   `json:"version"`
	SupportedFileTypes []string `json:"supported_file_types"`
}

// Handle processes a librarian_config request, returning the server
// configuration as indented JSON.
func (h *ConfigHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ConfigArgs) (*mcp.CallToolResult, any, error) {
	config := serverConfig{
		RepositoryPath:     h.Indexer.RootDir(),
		IndexPath:          h.Indexer.IndexPath(),
		Version:            serverVersion,
		SupportedFileTypes: filetype.Names(),
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		h.Logger.Error("librarian_config failed", "error", err)
		return errorResult("Config error: %v", err), nil, nil
	}

	return textResult(string(data)), nil, nil
}

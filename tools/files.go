package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/index"
)

// FilesArgs defines the input parameters for the librarian_files tool.
type FilesArgs struct {
	Pattern  string `json:"pattern" jsonschema:"Glob pattern to match files (e.g. **/*.py or src/**/*.ts)"`
	NameOnly bool   `json:"nameOnly,omitempty" jsonschema:"If true return only file paths without metadata"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 100)"`
}

// FilesHandler holds the dependencies for the glob file search tool.
type FilesHandler struct {
	Store      *index.Store
	MaxResults int // default result cap when the request has no limit
	Logger     *slog.Logger
}

// Handle processes a librarian_files request.
func (h *FilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FilesArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Pattern == "" {
		h.Logger.Warn("librarian_files called with empty pattern")
		return errorResult("Error: pattern parameter is required"), nil, nil
	}

	snapshot := h.Store.Current()
	if snapshot == nil {
		return errorResult("Error: index not initialized"), nil, nil
	}

	results, err := snapshot.SearchGlob(args.Pattern, resolveLimit(args.Limit, h.MaxResults))
	if err != nil {
		h.Logger.Warn("librarian_files rejected pattern", "pattern", args.Pattern, "error", err)
		return errorResult("Error: %v", err), nil, nil
	}

	h.Logger.Info("librarian_files",
		"pattern", args.Pattern,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	if len(results) == 0 {
		return textResult("No files matched."), nil, nil
	}

	if args.NameOnly {
		var builder strings.Builder
		for _, entry := range results {
			builder.WriteString(entry.Path)
			builder.WriteString("\n")
		}
		return textResult(builder.String()), nil, nil
	}

	output := fmt.Sprintf("Found %d file(s):\n\n%s", len(results), FormatEntryList(results))
	return textResult(output), nil, nil
}

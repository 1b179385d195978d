package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/index"
)

// ByTypeArgs defines the input parameters for the librarian_search_type tool.
type ByTypeArgs struct {
	FileType string `json:"fileType" jsonschema:"File type to filter by (python, javascript, typescript, go, ...)"`
	Pattern  string `json:"pattern,omitempty" jsonschema:"Optional case-insensitive substring to further filter paths"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 100)"`
}

// ByTypeHandler holds the dependencies for the type-filtered search tool.
type ByTypeHandler struct {
	Store      *index.Store
	MaxResults int // default result cap when the request has no limit
	Logger     *slog.Logger
}

// Handle processes a librarian_search_type request.
func (h *ByTypeHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ByTypeArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.FileType == "" {
		h.Logger.Warn("librarian_search_type called with empty fileType")
		return errorResult("Error: fileType parameter is required"), nil, nil
	}

	snapshot := h.Store.Current()
	if snapshot == nil {
		return errorResult("Error: index not initialized"), nil, nil
	}

	results, err := snapshot.SearchByType(args.FileType, args.Pattern, resolveLimit(args.Limit, h.MaxResults))
	if err != nil {
		h.Logger.Warn("librarian_search_type rejected type", "fileType", args.FileType, "error", err)
		return errorResult("Error: %v", err), nil, nil
	}

	h.Logger.Info("librarian_search_type",
		"fileType", args.FileType,
		"pattern", args.Pattern,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	if len(results) == 0 {
		return textResult(fmt.Sprintf("No %s files found.", args.FileType)), nil, nil
	}

	output := fmt.Sprintf("Found %d %s file(s):\n\n%s",
		len(results), args.FileType, FormatEntryList(results))
	return textResult(output), nil, nil
}

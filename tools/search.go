package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/index"
)

// SearchArgs defines the input parameters for the librarian_search tool.
type SearchArgs struct {
	Query         string `json:"query" jsonschema:"Substring to match against indexed file paths"`
	CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"Match case-sensitively (default false)"`
	Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 100)"`
}

// SearchHandler holds the dependencies for the substring search tool.
type SearchHandler struct {
	Store      *index.Store
	MaxResults int // default result cap when the request has no limit
	Logger     *slog.Logger
}

// Handle processes a librarian_search request.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("librarian_search called with empty query")
		return errorResult("Error: query parameter is required"), nil, nil
	}

	snapshot := h.Store.Current()
	if snapshot == nil {
		return errorResult("Error: index not initialized"), nil, nil
	}

	results := snapshot.SearchSubstring(args.Query, args.CaseSensitive, resolveLimit(args.Limit, h.MaxResults))

	h.Logger.Info("librarian_search",
		"query", args.Query,
		"caseSensitive", args.CaseSensitive,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	if len(results) == 0 {
		return textResult("No files found matching the pattern."), nil, nil
	}

	output := fmt.Sprintf("Found %d file(s) matching %q:\n\n%s",
		len(results), args.Query, FormatEntryList(results))
	return textResult(output), nil, nil
}

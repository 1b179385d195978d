package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/index"
)

// RegexArgs defines the input parameters for the librarian_search_regex tool.
type RegexArgs struct {
	Pattern       string `json:"pattern" jsonschema:"Regular expression matched anywhere in the file path"`
	CaseSensitive bool   `json:"caseSensitive,omitempty" jsonschema:"Match case-sensitively (default false)"`
	Limit         int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 100)"`
}

// RegexHandler holds the dependencies for the regex search tool.
type RegexHandler struct {
	Store      *index.Store
	MaxResults int // default result cap when the request has no limit
	Logger     *slog.Logger
}

// Handle processes a librarian_search_regex request.
func (h *RegexHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args RegexArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Pattern == "" {
		h.Logger.Warn("librarian_search_regex called with empty pattern")
		return errorResult("Error: pattern parameter is required"), nil, nil
	}

	snapshot := h.Store.Current()
	if snapshot == nil {
		return errorResult("Error: index not initialized"), nil, nil
	}

	results, err := snapshot.SearchRegex(args.Pattern, args.CaseSensitive, resolveLimit(args.Limit, h.MaxResults))
	if err != nil {
		h.Logger.Warn("librarian_search_regex rejected pattern", "pattern", args.Pattern, "error", err)
		return errorResult("Error: %v", err), nil, nil
	}

	h.Logger.Info("librarian_search_regex",
		"pattern", args.Pattern,
		"caseSensitive", args.CaseSensitive,
		"results", len(results),
		"elapsed", time.Since(start),
	)

	if len(results) == 0 {
		return textResult("No files found matching the regex pattern."), nil, nil
	}

	output := fmt.Sprintf("Found %d file(s) matching regex %q:\n\n%s",
		len(results), args.Pattern, FormatEntryList(results))
	return textResult(output), nil, nil
}

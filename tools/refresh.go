package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/index"
)

// RefreshArgs defines the input parameters for the librarian_refresh tool (none required).
type RefreshArgs struct{}

// RefreshHandler holds the dependencies for the refresh tool.
type RefreshHandler struct {
	Indexer *index.Indexer
	Store   *index.Store
	Logger  *slog.Logger
}

// Handle processes a librarian_refresh request: full rebuild, persist, and
// atomic snapshot replacement.
func (h *RefreshHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args RefreshArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()
	h.Logger.Info("librarian_refresh started")

	idx, err := h.Indexer.RefreshIndex()
	if err != nil {
		h.Logger.Error("librarian_refresh failed", "error", err)
		return errorResult("Refresh error: %v", err), nil, nil
	}
	if err := h.Indexer.SaveIndex(idx); err != nil {
		h.Logger.Error("librarian_refresh save failed", "error", err)
		return errorResult("Refresh error: %v", err), nil, nil
	}
	h.Store.Replace(idx)

	h.Logger.Info("librarian_refresh complete",
		"files", idx.Repository.TotalFiles,
		"elapsed", time.Since(start),
	)

	output := fmt.Sprintf("Index refreshed successfully!\nRepository: %s\nTotal files: %d\nLast updated: %s",
		idx.Repository.Path,
		idx.Repository.TotalFiles,
		idx.LastUpdated.Format("2006-01-02 15:04:05"),
	)
	return textResult(output), nil, nil
}

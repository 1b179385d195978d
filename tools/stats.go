package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/filetype"
	"github.com/halvard/librarian-mcp/index"
)

// StatsArgs defines the input parameters for the librarian_stats tool (none required).
type StatsArgs struct{}

// StatsHandler holds the dependencies for the stats tool.
type StatsHandler struct {
	Store   *index.Store
	Indexer *index.Indexer
	Logger  *slog.Logger
}

// Handle processes a librarian_stats request.
func (h *StatsHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatsArgs) (*mcp.CallToolResult, any, error) {
	snapshot := h.Store.Current()
	if snapshot == nil {
		return errorResult("Error: index not initialized"), nil, nil
	}

	stats := snapshot.ComputeStats(h.Indexer.IndexPath())

	h.Logger.Info("librarian_stats",
		"files", stats.TotalFiles,
		"totalSize", stats.TotalSize,
	)

	var builder strings.Builder
	builder.WriteString("Index Statistics:\n")
	builder.WriteString("================\n\n")
	builder.WriteString(fmt.Sprintf("Repository: %s\n", snapshot.Repository.Path))
	builder.WriteString(fmt.Sprintf("Total files: %d\n", stats.TotalFiles))
	builder.WriteString(fmt.Sprintf("Total size: %s\n", formatFileSize(stats.TotalSize)))
	builder.WriteString(fmt.Sprintf("Last updated: %s\n", stats.LastUpdated.Format("2006-01-02 15:04:05")))

	if len(stats.FileTypes) > 0 {
		builder.WriteString("\nFiles by type:\n")

		type typeEntry struct {
			fileType filetype.FileType
			count    int
		}
		entries := make([]typeEntry, 0, len(stats.FileTypes))
		for fileType, count := range stats.FileTypes {
			entries = append(entries, typeEntry{fileType, count})
		}
		// Count descending, name ascending for equal counts
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].count != entries[j].count {
				return entries[i].count > entries[j].count
			}
			return entries[i].fileType < entries[j].fileType
		})

		for _, entry := range entries {
			builder.WriteString(fmt.Sprintf("  - %s: %d\n", entry.fileType, entry.count))
		}
	}

	return textResult(builder.String()), nil, nil
}

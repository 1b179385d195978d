package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/tools"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	searchHandler *tools.SearchHandler,
	regexHandler *tools.RegexHandler,
	byTypeHandler *tools.ByTypeHandler,
	filesHandler *tools.FilesHandler,
	refreshHandler *tools.RefreshHandler,
	statsHandler *tools.StatsHandler,
	configHandler *tools.ConfigHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "librarian-mcp",
			Version: "0.1.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server maintains a persisted index of the repository's files (path, type, size, modification time, content hash) and answers metadata queries against it without touching the filesystem.

Use these tools to locate files by name:
- librarian_search for substring matching on paths
- librarian_search_regex for regular expression matching
- librarian_search_type to filter by file type (python, typescript, go, ...)
- librarian_files for glob patterns like **/*.py
- librarian_refresh after large external changes to rebuild the index
- librarian_stats and librarian_config for index state and server settings`,
		},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "librarian_search",
		Description: `Search indexed files by path substring.

Matching is case-insensitive unless caseSensitive is set. Results preserve index order and are truncated to limit (default 100).`,
	}, searchHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "librarian_search_regex",
		Description: `Search indexed files by regular expression on the path.

The pattern matches anywhere in the relative path (e.g. "\.tsx?$" or "^src/"). Invalid patterns return a descriptive error.`,
	}, regexHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "librarian_search_type",
		Description: `List indexed files of a given type (python, javascript, typescript, kotlin, java, go, rust, cpp, c, csharp, ruby, php, swift, markdown, json, yaml, xml, html, css, other).

An optional pattern further filters by case-insensitive path substring.`,
	}, byTypeHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "librarian_files",
		Description: `Find indexed files by glob pattern.

Pattern examples:
  - "**/*.py" - all Python files
  - "src/**/*.ts" - TypeScript files under src/
  - "*.json" - JSON files in the repository root only`,
	}, filesHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "librarian_refresh",
		Description: "Rebuild the file index from scratch by rescanning the repository, then persist it. Use after large changes made outside the watcher's view.",
	}, refreshHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "librarian_stats",
		Description: "Show index statistics: total files, total size, per-type counts, and last update time.",
	}, statsHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "librarian_config",
		Description: "Show server configuration as JSON: repository path, index location, version, and supported file types.",
	}, configHandler.Handle)

	return mcpServer
}

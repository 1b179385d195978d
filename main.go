package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/halvard/librarian-mcp/ignore"
	"github.com/halvard/librarian-mcp/index"
	"github.com/halvard/librarian-mcp/server"
	"github.com/halvard/librarian-mcp/tools"
	"github.com/halvard/librarian-mcp/watcher"
)

// excludePatterns is a repeatable CLI flag for custom ignore patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "register" {
		runRegister(os.Args[2:])
		return
	}

	var rootDir string
	var maxResults int
	var logLevel string
	var logFile string
	var watch bool
	var excludes excludePatterns

	flag.StringVar(&rootDir, "root", "", "Repository root directory (default: located via .git, else current working directory)")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.IntVar(&maxResults, "max-results", 100, "Default max search results (default: 100)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: <root>/.claude/workspace/librarian-mcp.log)")
	flag.BoolVar(&watch, "watch", true, "Watch the repository and refresh the index on changes")
	flag.Parse()

	if rootDir == "" {
		rootDir = index.FindRepoRoot()
	}
	rootDir, _ = filepath.Abs(rootDir)

	// Never log to stdout: stdout carries the MCP stdio protocol
	if logFile == "" {
		logFile = filepath.Join(rootDir, ".claude", "workspace", "librarian-mcp.log")
	}
	logger := setupLogger(logLevel, logFile)

	logger.Info("starting librarian-mcp", "root", rootDir, "maxResults", maxResults)

	ignoreMatcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:        rootDir,
		CustomPatterns: excludes,
	})
	indexer := index.NewIndexer(rootDir, ignoreMatcher, logger)
	store := index.NewStore()

	// Initialize the snapshot: load the persisted index or build one now
	idx, err := indexer.GetOrCreateIndex()
	if err != nil {
		logger.Error("failed to initialize index", "error", err)
		fmt.Fprintf(os.Stderr, "Error initializing index: %v\n", err)
		os.Exit(1)
	}
	store.Replace(idx)

	if watch {
		fileWatcher, err := watcher.NewWatcher(rootDir, ignoreMatcher, logger)
		if err != nil {
			logger.Warn("failed to start file watcher, continuing with manual refresh only", "error", err)
		} else {
			go fileWatcher.Start()
			go handleRefreshSignals(fileWatcher, indexer, store, logger)
			defer fileWatcher.Close()
		}
	}

	searchHandler := &tools.SearchHandler{Store: store, MaxResults: maxResults, Logger: logger}
	regexHandler := &tools.RegexHandler{Store: store, MaxResults: maxResults, Logger: logger}
	byTypeHandler := &tools.ByTypeHandler{Store: store, MaxResults: maxResults, Logger: logger}
	filesHandler := &tools.FilesHandler{Store: store, MaxResults: maxResults, Logger: logger}
	refreshHandler := &tools.RefreshHandler{Indexer: indexer, Store: store, Logger: logger}
	statsHandler := &tools.StatsHandler{Store: store, Indexer: indexer, Logger: logger}
	configHandler := &tools.ConfigHandler{Indexer: indexer, Logger: logger}

	mcpServer := server.Setup(
		searchHandler,
		regexHandler,
		byTypeHandler,
		filesHandler,
		refreshHandler,
		statsHandler,
		configHandler,
	)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// handleRefreshSignals rebuilds and republishes the index whenever the
// watcher reports that the tree changed.
func handleRefreshSignals(
	fileWatcher *watcher.Watcher,
	indexer *index.Indexer,
	store *index.Store,
	logger *slog.Logger,
) {
	for range fileWatcher.Refreshes() {
		idx, err := indexer.RefreshIndex()
		if err != nil {
			logger.Error("auto refresh failed", "error", err)
			continue
		}
		if err := indexer.SaveIndex(idx); err != nil {
			logger.Error("auto refresh save failed", "error", err)
		}
		store.Replace(idx)
		logger.Info("index refreshed by watcher", "files", idx.Repository.TotalFiles)
	}
}

// setupLogger creates an slog.Logger writing to the given file, falling back
// to stderr if the file cannot be opened.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	writer := os.Stderr
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err == nil {
			if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				writer = f
			} else {
				fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			}
		}
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}

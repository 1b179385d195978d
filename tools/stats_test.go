package tools

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/halvard/librarian-mcp/ignore"
	"github.com/halvard/librarian-mcp/index"
)

func newTestIndexer(t *testing.T) *index.Indexer {
	t.Helper()
	root := t.TempDir()
	matcher := ignore.NewMatcher(ignore.MatcherOptions{RootDir: root})
	return index.NewIndexer(root, matcher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func Test_StatsHandler_Output(t *testing.T) {
	h := &StatsHandler{
		Store:   newTestStore(),
		Indexer: newTestIndexer(t),
		Logger:  discardLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, StatsArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	text := resultText(t, result)
	for _, want := range []string{
		"Total files: 4",
		"- python: 2",
		"- javascript: 1",
		"- typescript: 1",
		"/project",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("expected stats output to contain %q, got:\n%s", want, text)
		}
	}
}

func Test_StatsHandler_NoIndex(t *testing.T) {
	h := &StatsHandler{
		Store:   index.NewStore(),
		Indexer: newTestIndexer(t),
		Logger:  discardLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, StatsArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true before any snapshot is published")
	}
}

func Test_ConfigHandler_Output(t *testing.T) {
	indexer := newTestIndexer(t)
	h := &ConfigHandler{Indexer: indexer, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, ConfigArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("expected success, got error result")
	}

	var config map[string]any
	if err := json.Unmarshal([]byte(resultText(t, result)), &config); err != nil {
		t.Fatalf("expected valid JSON output: %v", err)
	}
	if config["repository_path"] != indexer.RootDir() {
		t.Errorf("repository_path = %v, want %s", config["repository_path"], indexer.RootDir())
	}
	if config["index_path"] != indexer.IndexPath() {
		t.Errorf("index_path = %v, want %s", config["index_path"], indexer.IndexPath())
	}
	types, ok := config["supported_file_types"].([]any)
	if !ok || len(types) == 0 {
		t.Error("expected supported_file_types to be a non-empty list")
	}
}

func Test_RefreshHandler_RebuildsAndPersists(t *testing.T) {
	root := t.TempDir()
	os.MkdirAll(filepath.Join(root, "src"), 0755)
	os.WriteFile(filepath.Join(root, "src", "main.py"), []byte("pass\n"), 0644)

	matcher := ignore.NewMatcher(ignore.MatcherOptions{RootDir: root})
	indexer := index.NewIndexer(root, matcher, slog.New(slog.NewTextHandler(io.Discard, nil)))
	store := index.NewStore()

	h := &RefreshHandler{Indexer: indexer, Store: store, Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, RefreshArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("expected success, got: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Total files: 1") {
		t.Errorf("expected refresh summary with 1 file, got:\n%s", text)
	}

	snapshot := store.Current()
	if snapshot == nil || snapshot.Repository.TotalFiles != 1 {
		t.Error("expected refreshed snapshot to be published to the store")
	}
	if _, err := os.Stat(indexer.IndexPath()); err != nil {
		t.Errorf("expected refreshed snapshot to be persisted: %v", err)
	}
}

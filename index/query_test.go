package index

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/halvard/librarian-mcp/filetype"
)

func testIndex() *WorkspaceIndex {
	return &WorkspaceIndex{
		Version:     Version,
		LastUpdated: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Repository:  RepositoryInfo{Path: "/project", TotalFiles: 4},
		Index: FileList{Files: []FileEntry{
			{Path: "src/main.py", Type: filetype.Python, Size: 100},
			{Path: "src/utils.py", Type: filetype.Python, Size: 200},
			{Path: "js/app.js", Type: filetype.JavaScript, Size: 300},
			{Path: "js/component.tsx", Type: filetype.TypeScript, Size: 400},
		}},
		FileTypes: filetype.Extensions(),
	}
}

func Test_SearchSubstring_CaseInsensitive(t *testing.T) {
	idx := testIndex()

	results := idx.SearchSubstring("MAIN", false, 0)
	if len(results) != 1 || results[0].Path != "src/main.py" {
		t.Errorf("expected [src/main.py], got %v", results)
	}
}

func Test_SearchSubstring_CaseSensitive(t *testing.T) {
	idx := testIndex()

	if results := idx.SearchSubstring("MAIN", true, 0); len(results) != 0 {
		t.Errorf("expected no case-sensitive matches for MAIN, got %v", results)
	}
	if results := idx.SearchSubstring("main", true, 0); len(results) != 1 {
		t.Errorf("expected one case-sensitive match for main, got %v", results)
	}
}

func Test_SearchSubstring_PreservesIndexOrder(t *testing.T) {
	idx := testIndex()

	results := idx.SearchSubstring(".py", false, 0)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Path != "src/main.py" || results[1].Path != "src/utils.py" {
		t.Errorf("expected index order, got %s then %s", results[0].Path, results[1].Path)
	}
}

func Test_SearchSubstring_Limit(t *testing.T) {
	idx := testIndex()

	if results := idx.SearchSubstring("s", false, 2); len(results) != 2 {
		t.Errorf("expected limit of 2 to truncate results, got %d", len(results))
	}
}

func Test_SearchRegex_Matches(t *testing.T) {
	idx := testIndex()

	results, err := idx.SearchRegex(`\.tsx?$`, false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Path != "js/component.tsx" {
		t.Errorf("expected [js/component.tsx], got %v", results)
	}
}

func Test_SearchRegex_CaseInsensitiveFlag(t *testing.T) {
	idx := testIndex()

	results, err := idx.SearchRegex("APP", false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Path != "js/app.js" {
		t.Errorf("expected [js/app.js], got %v", results)
	}

	results, err = idx.SearchRegex("APP", true, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no case-sensitive matches, got %v", results)
	}
}

func Test_SearchRegex_InvalidPattern(t *testing.T) {
	idx := testIndex()

	_, err := idx.SearchRegex("[invalid", false, 0)
	if err == nil {
		t.Fatal("expected error for invalid regex")
	}

	var patternErr *InvalidPatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("expected InvalidPatternError, got %T", err)
	}
	if patternErr.Pattern != "[invalid" {
		t.Errorf("expected error to carry the pattern, got %q", patternErr.Pattern)
	}
	if patternErr.Unwrap() == nil {
		t.Error("expected error to wrap the compiler diagnostic")
	}
}

func Test_SearchByType_Filter(t *testing.T) {
	idx := testIndex()

	results, err := idx.SearchByType("python", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 python files, got %d", len(results))
	}
	for _, entry := range results {
		if entry.Type != filetype.Python {
			t.Errorf("expected python entries only, got %s", entry.Type)
		}
	}
}

func Test_SearchByType_WithPattern(t *testing.T) {
	idx := testIndex()

	results, err := idx.SearchByType("python", "UTILS", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 || results[0].Path != "src/utils.py" {
		t.Errorf("expected [src/utils.py], got %v", results)
	}
}

func Test_SearchByType_Unknown(t *testing.T) {
	idx := testIndex()

	_, err := idx.SearchByType("cobol", "", 0)
	if err == nil {
		t.Fatal("expected error for unknown file type")
	}
	if !strings.Contains(err.Error(), "python") || !strings.Contains(err.Error(), "typescript") {
		t.Errorf("expected error to enumerate valid types, got: %v", err)
	}
}

func Test_SearchGlob(t *testing.T) {
	idx := testIndex()

	results, err := idx.SearchGlob("**/*.py", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 glob matches, got %d", len(results))
	}

	if _, err := idx.SearchGlob("[invalid", 0); err == nil {
		t.Error("expected error for invalid glob pattern")
	}
}

func Test_ComputeStats(t *testing.T) {
	idx := testIndex()

	stats := idx.ComputeStats("/project/.claude/workspace/workspace.yml")

	if stats.TotalFiles != 4 {
		t.Errorf("total files = %d, want 4", stats.TotalFiles)
	}
	if stats.TotalSize != 1000 {
		t.Errorf("total size = %d, want 1000", stats.TotalSize)
	}

	wantCounts := map[filetype.FileType]int{
		filetype.Python:     2,
		filetype.JavaScript: 1,
		filetype.TypeScript: 1,
	}
	for fileType, want := range wantCounts {
		if got := stats.FileTypes[fileType]; got != want {
			t.Errorf("count[%s] = %d, want %d", fileType, got, want)
		}
	}
	if len(stats.FileTypes) != len(wantCounts) {
		t.Errorf("expected exactly %d types present, got %d", len(wantCounts), len(stats.FileTypes))
	}
	if !stats.LastUpdated.Equal(idx.LastUpdated) {
		t.Errorf("last updated = %v, want %v", stats.LastUpdated, idx.LastUpdated)
	}
	if stats.IndexPath == "" {
		t.Error("expected index path to be set")
	}
}

package index

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/halvard/librarian-mcp/filetype"
)

// DefaultLimit caps search results when the caller does not provide a limit.
const DefaultLimit = 100

// InvalidPatternError reports a regular expression that failed to compile.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error { return e.Err }

// SearchSubstring returns entries whose path contains pattern as a substring,
// in index order, truncated to limit. Case folding is applied to both sides
// when caseSensitive is false.
func (w *WorkspaceIndex) SearchSubstring(pattern string, caseSensitive bool, limit int) []FileEntry {
	limit = normalizeLimit(limit)

	if !caseSensitive {
		pattern = strings.ToLower(pattern)
	}

	var results []FileEntry
	for _, entry := range w.Index.Files {
		if len(results) >= limit {
			break
		}
		path := entry.Path
		if !caseSensitive {
			path = strings.ToLower(path)
		}
		if strings.Contains(path, pattern) {
			results = append(results, entry)
		}
	}
	return results
}

// SearchRegex returns entries whose path matches the regular expression
// anywhere, truncated to limit. An InvalidPatternError is returned when the
// pattern does not compile.
func (w *WorkspaceIndex) SearchRegex(pattern string, caseSensitive bool, limit int) ([]FileEntry, error) {
	limit = normalizeLimit(limit)

	expr := pattern
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	var results []FileEntry
	for _, entry := range w.Index.Files {
		if len(results) >= limit {
			break
		}
		if re.MatchString(entry.Path) {
			results = append(results, entry)
		}
	}
	return results, nil
}

// SearchByType filters entries to the named file type, optionally further
// filtered by a case-insensitive substring match on the path, truncated to
// limit. Unrecognized type names produce an error listing the valid types.
func (w *WorkspaceIndex) SearchByType(typeName string, pattern string, limit int) ([]FileEntry, error) {
	limit = normalizeLimit(limit)

	fileType, err := filetype.Parse(typeName)
	if err != nil {
		return nil, err
	}

	loweredPattern := strings.ToLower(pattern)
	var results []FileEntry
	for _, entry := range w.Index.Files {
		if len(results) >= limit {
			break
		}
		if entry.Type != fileType {
			continue
		}
		if pattern != "" && !strings.Contains(strings.ToLower(entry.Path), loweredPattern) {
			continue
		}
		results = append(results, entry)
	}
	return results, nil
}

// SearchGlob returns entries whose path matches a doublestar glob pattern
// (e.g. "src/**/*.py"), truncated to limit.
func (w *WorkspaceIndex) SearchGlob(pattern string, limit int) ([]FileEntry, error) {
	limit = normalizeLimit(limit)

	pattern = strings.ReplaceAll(pattern, "\\", "/")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	var results []FileEntry
	for _, entry := range w.Index.Files {
		if len(results) >= limit {
			break
		}
		matched, err := doublestar.Match(pattern, entry.Path)
		if err != nil {
			continue
		}
		if matched {
			results = append(results, entry)
		}
	}
	return results, nil
}

// ComputeStats aggregates totals and per-type counts over the snapshot.
// Every type present in the index appears in the counts.
func (w *WorkspaceIndex) ComputeStats(indexPath string) Stats {
	counts := make(map[filetype.FileType]int)
	var totalSize int64
	for _, entry := range w.Index.Files {
		counts[entry.Type]++
		totalSize += entry.Size
	}

	return Stats{
		TotalFiles:  len(w.Index.Files),
		TotalSize:   totalSize,
		FileTypes:   counts,
		LastUpdated: w.LastUpdated,
		IndexPath:   indexPath,
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

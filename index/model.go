package index

import (
	"time"

	"github.com/halvard/librarian-mcp/filetype"
)

// Version is the schema version written into every persisted snapshot.
const Version = "1.0"

// FileEntry records one indexed file. Entries are immutable; a re-index
// replaces them wholesale.
type FileEntry struct {
	Path     string            `yaml:"path"` // relative to repo root, forward slashes
	Type     filetype.FileType `yaml:"type"`
	Size     int64             `yaml:"size"`
	Modified time.Time         `yaml:"modified"`
	Hash     string            `yaml:"hash"` // lowercase hex SHA-256, empty if unreadable
}

// RepositoryInfo describes the indexed repository. TotalFiles is derived
// from the entry count, never tracked independently.
type RepositoryInfo struct {
	Path       string `yaml:"path"`
	TotalFiles int    `yaml:"total_files"`
}

// FileList wraps the indexed file entries, preserving traversal order.
type FileList struct {
	Files []FileEntry `yaml:"files"`
}

// WorkspaceIndex is the full snapshot of a repository's file metadata.
// The embedded FileTypes table is informational, kept so a persisted
// snapshot stays interpretable without the tool.
type WorkspaceIndex struct {
	Version     string                         `yaml:"version"`
	LastUpdated time.Time                      `yaml:"last_updated"`
	Repository  RepositoryInfo                 `yaml:"repository"`
	Index       FileList                       `yaml:"index"`
	FileTypes   map[filetype.FileType][]string `yaml:"file_types"`
}

// Stats aggregates index-wide statistics.
type Stats struct {
	TotalFiles  int
	TotalSize   int64
	FileTypes   map[filetype.FileType]int
	LastUpdated time.Time
	IndexPath   string
}

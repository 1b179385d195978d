package index

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/halvard/librarian-mcp/filetype"
	"github.com/halvard/librarian-mcp/ignore"
)

// workspaceDir is the tool's state directory under the repository root.
const workspaceDir = ".claude/workspace"

// indexFileName is the persisted snapshot file inside workspaceDir.
const indexFileName = "workspace.yml"

// Indexer builds, persists, and reloads workspace indexes for one repository.
type Indexer struct {
	rootDir   string
	indexPath string
	matcher   *ignore.Matcher
	logger    *slog.Logger
}

// NewIndexer creates an indexer for the repository at rootDir.
func NewIndexer(rootDir string, matcher *ignore.Matcher, logger *slog.Logger) *Indexer {
	return &Indexer{
		rootDir:   rootDir,
		indexPath: filepath.Join(rootDir, filepath.FromSlash(workspaceDir), indexFileName),
		matcher:   matcher,
		logger:    logger,
	}
}

// RootDir returns the absolute repository root.
func (ix *Indexer) RootDir() string { return ix.rootDir }

// IndexPath returns the location of the persisted snapshot.
func (ix *Indexer) IndexPath() string { return ix.indexPath }

// FindRepoRoot walks upward from the current working directory looking for a
// .git directory. It returns the first ancestor containing one, or the
// working directory itself if none is found.
func FindRepoRoot() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd
		}
		dir = parent
	}
}

// CreateIndex walks the repository depth-first and builds a fresh snapshot.
// Per-file and per-directory failures are skipped and logged; only an
// inaccessible repository root is fatal.
func (ix *Indexer) CreateIndex() (*WorkspaceIndex, error) {
	start := time.Now()
	var files []FileEntry
	var skipped int

	err := filepath.WalkDir(ix.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == ix.rootDir {
				return fmt.Errorf("accessing repository root %s: %w", ix.rootDir, err)
			}
			// Unreadable subtree or entry, skip it
			skipped++
			ix.logger.Debug("skipped unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != ix.rootDir && ix.matcher.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if ix.matcher.ShouldIgnore(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			skipped++
			ix.logger.Debug("skipped file", "path", path, "error", err)
			return nil
		}
		relPath, err := filepath.Rel(ix.rootDir, path)
		if err != nil {
			skipped++
			return nil
		}

		files = append(files, FileEntry{
			Path:     filepath.ToSlash(relPath),
			Type:     filetype.Classify(path),
			Size:     info.Size(),
			Modified: info.ModTime(),
			Hash:     HashFile(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	absRoot, err := filepath.Abs(ix.rootDir)
	if err != nil {
		absRoot = ix.rootDir
	}

	idx := &WorkspaceIndex{
		Version:     Version,
		LastUpdated: time.Now(),
		Repository:  RepositoryInfo{Path: absRoot, TotalFiles: len(files)},
		Index:       FileList{Files: files},
		FileTypes:   filetype.Extensions(),
	}

	ix.logger.Info("indexing complete",
		"root", ix.rootDir,
		"files", len(files),
		"skipped", skipped,
		"duration", time.Since(start),
	)
	return idx, nil
}

// SaveIndex serializes the snapshot as YAML to the workspace state location,
// creating intermediate directories as needed. The write is atomic: a temp
// file in the same directory is renamed into place.
func (ix *Indexer) SaveIndex(idx *WorkspaceIndex) error {
	dir := filepath.Dir(ix.indexPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating workspace directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".workspace-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, ix.indexPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, ix.indexPath, err)
	}

	ix.logger.Debug("index saved", "path", ix.indexPath)
	return nil
}

// LoadIndex reads the persisted snapshot. It returns (nil, nil) when no
// snapshot exists; a parse failure is returned for the caller to report and
// treat as "no index".
func (ix *Indexer) LoadIndex() (*WorkspaceIndex, error) {
	data, err := os.ReadFile(ix.indexPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", ix.indexPath, err)
	}

	var idx WorkspaceIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", ix.indexPath, err)
	}

	// total_files is derived; recompute so a hand-edited snapshot cannot drift
	idx.Repository.TotalFiles = len(idx.Index.Files)
	return &idx, nil
}

// RefreshIndex discards any previous snapshot and rebuilds from scratch.
// Ignore rules are reloaded first in case .gitignore changed.
func (ix *Indexer) RefreshIndex() (*WorkspaceIndex, error) {
	ix.matcher.Reload()
	return ix.CreateIndex()
}

// GetOrCreateIndex returns the persisted snapshot if present and loadable,
// otherwise builds a fresh one and persists it immediately.
func (ix *Indexer) GetOrCreateIndex() (*WorkspaceIndex, error) {
	idx, err := ix.LoadIndex()
	if err != nil {
		ix.logger.Warn("discarding unreadable index, rebuilding", "error", err)
	}
	if idx != nil {
		ix.logger.Info("loaded existing index", "files", idx.Repository.TotalFiles, "path", ix.indexPath)
		return idx, nil
	}

	idx, err = ix.CreateIndex()
	if err != nil {
		return nil, err
	}
	if err := ix.SaveIndex(idx); err != nil {
		return nil, err
	}
	return idx, nil
}

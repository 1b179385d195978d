package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides whether a path is excluded from indexing.
//
// Hidden path components are always excluded, which covers the implicit
// rules for the .git and .claude directories. When the repository has a
// .gitignore its rules apply on top, plus any custom CLI patterns; without
// one, a fixed denylist of dependency/build directories applies instead.
//
// Thread-safe: Reload() acquires a write lock, the Should* methods a read lock.
type Matcher struct {
	mu             sync.RWMutex
	rootDir        string
	gitIgnore      gitignore.GitIgnore // nil when the repo has no .gitignore
	customPatterns []string
}

// MatcherOptions configures the ignore matcher.
type MatcherOptions struct {
	RootDir        string
	CustomPatterns []string
}

// NewMatcher creates a matcher rooted at options.RootDir, loading the
// repository's .gitignore if one exists.
func NewMatcher(options MatcherOptions) *Matcher {
	return &Matcher{
		rootDir:        options.RootDir,
		gitIgnore:      loadIgnoreFile(filepath.Join(options.RootDir, ".gitignore"), options.RootDir),
		customPatterns: options.CustomPatterns,
	}
}

// ShouldIgnore returns true if the given path should be excluded from indexing.
// The path should be absolute or relative to the root directory. Paths outside
// the repository root are always ignored.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		return true
	}
	relativePath = filepath.ToSlash(relativePath)
	if relativePath == "." {
		return false
	}
	if relativePath == ".." || strings.HasPrefix(relativePath, "../") {
		// Outside the repository root
		return true
	}

	// Hidden components are never indexed. This subsumes the implicit rules
	// for the VCS metadata (.git) and tool state (.claude) directories.
	parts := strings.Split(relativePath, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}

	if m.gitIgnore != nil {
		// Use Relative() so matching works for paths that no longer exist on disk
		match := m.gitIgnore.Relative(relativePath, isDirectory(absolutePath))
		if match != nil && match.Ignore() {
			return true
		}
		// Relative() matches the single path only. Directory rules must cover
		// everything beneath the directory, so test each ancestor as a dir.
		// An excluded ancestor wins even over a negated file, as in git.
		ancestor := relativePath
		for {
			slash := strings.LastIndex(ancestor, "/")
			if slash < 0 {
				break
			}
			ancestor = ancestor[:slash]
			if match := m.gitIgnore.Relative(ancestor, true); match != nil && match.Ignore() {
				return true
			}
		}
		return m.matchesCustomPatterns(relativePath)
	}

	// Fallback policy: well-known dependency and build directories
	for _, part := range parts {
		if fallbackIgnoreDirs[part] {
			return true
		}
	}

	return m.matchesCustomPatterns(relativePath)
}

// ShouldIgnoreDir returns true if a directory should be skipped entirely
// during traversal, including everything beneath it.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	if strings.HasPrefix(filepath.Base(absolutePath), ".") {
		return true
	}
	return m.ShouldIgnore(absolutePath)
}

// Reload re-reads the repository's .gitignore from disk. Called when the
// watcher detects the file changed.
func (m *Matcher) Reload() {
	newGitIgnore := loadIgnoreFile(filepath.Join(m.rootDir, ".gitignore"), m.rootDir)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gitIgnore = newGitIgnore
}

// matchesCustomPatterns checks the path against user-provided CLI exclude patterns.
func (m *Matcher) matchesCustomPatterns(relativePath string) bool {
	for _, pattern := range m.customPatterns {
		matched, err := filepath.Match(pattern, relativePath)
		if err == nil && matched {
			return true
		}
		matched, err = filepath.Match(pattern, filepath.Base(relativePath))
		if err == nil && matched {
			return true
		}
	}
	return false
}

func isDirectory(absolutePath string) bool {
	info, err := os.Stat(absolutePath)
	return err == nil && info.IsDir()
}

// loadIgnoreFile reads an ignore file and creates a GitIgnore matcher from it.
// Returns nil if the file does not exist or cannot be read.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}

package index

import "sync"

// Store holds the live workspace snapshot for the server process.
// Refresh publishes a whole new snapshot via Replace; snapshots are never
// mutated in place, so a query running against the old snapshot is
// unaffected by a concurrent refresh.
type Store struct {
	mu      sync.RWMutex
	current *WorkspaceIndex
}

// NewStore creates an empty snapshot store.
func NewStore() *Store {
	return &Store{}
}

// Current returns the live snapshot, or nil if none has been published yet.
func (s *Store) Current() *WorkspaceIndex {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace atomically publishes a new snapshot.
func (s *Store) Replace(idx *WorkspaceIndex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = idx
}

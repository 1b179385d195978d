package watcher

import (
	"sync"
	"time"
)

// RefreshTrigger coalesces bursts of file change notifications into a single
// refresh signal emitted after a quiet period. The engine rebuilds the whole
// index per signal, so there is nothing to gain from per-file events.
type RefreshTrigger struct {
	interval time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	pending  bool
	output   chan struct{}
}

// NewRefreshTrigger creates a trigger with the specified quiet interval.
func NewRefreshTrigger(interval time.Duration) *RefreshTrigger {
	return &RefreshTrigger{
		interval: interval,
		output:   make(chan struct{}, 1),
	}
}

// Output returns the channel that receives refresh signals.
func (t *RefreshTrigger) Output() <-chan struct{} {
	return t.output
}

// Bump records a change and restarts the quiet-period timer.
func (t *RefreshTrigger) Bump() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.interval, t.fire)
}

// fire emits one refresh signal for all changes accumulated in the window.
// If a signal is already queued, the new changes fold into it.
func (t *RefreshTrigger) fire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.pending {
		return
	}
	t.pending = false

	select {
	case t.output <- struct{}{}:
	default:
	}
}

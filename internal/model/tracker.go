package model

import "sync"

// CompletionTracker accumulates progress counts from concurrently running
// sub-batches and reports when the expected total has been reached.
type CompletionTracker struct {
	mu       sync.Mutex
	expected int
	done     int
}

// NewCompletionTracker creates a tracker expecting the given number of entries
func NewCompletionTracker(expected int) *CompletionTracker {
	return &CompletionTracker{expected: expected}
}

// Add records n finished entries and returns true once the running count
// reaches the expected total.
func (t *CompletionTracker) Add(n int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done += n
	return t.done >= t.expected
}

// Done returns the running count
func (t *CompletionTracker) Done() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done
}

// Expected returns the expected total
func (t *CompletionTracker) Expected() int {
	return t.expected
}

package ui

import (
	"sync"

	"github.com/ytget/yt-album-downloader/internal/model"
)

// BulkQueue holds the entries shown on the bulk tab. It is safe for
// concurrent use because title lookups finish on background goroutines.
type BulkQueue struct {
	mu      sync.RWMutex
	entries []model.QueueEntry
}

// NewBulkQueue creates an empty queue
func NewBulkQueue() *BulkQueue {
	return &BulkQueue{}
}

// Add appends an entry
func (q *BulkQueue) Add(entry model.QueueEntry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, entry)
}

// Remove deletes the entry at index; out-of-range indexes are ignored
func (q *BulkQueue) Remove(index int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if index < 0 || index >= len(q.entries) {
		return
	}
	q.entries = append(q.entries[:index], q.entries[index+1:]...)
}

// Clear empties the queue
func (q *BulkQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = nil
}

// Len returns the number of entries
func (q *BulkQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.entries)
}

// At returns the entry at index
func (q *BulkQueue) At(index int) (model.QueueEntry, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if index < 0 || index >= len(q.entries) {
		return model.QueueEntry{}, false
	}
	return q.entries[index], true
}

// Entries returns a copy of the queue in order
func (q *BulkQueue) Entries() []model.QueueEntry {
	q.mu.RLock()
	defer q.mu.RUnlock()
	out := make([]model.QueueEntry, len(q.entries))
	copy(out, q.entries)
	return out
}

package hashing

import "sync"

// ThreadSafeTable wraps Table with mutex protection for concurrent access.
type ThreadSafeTable struct {
	table *Table
	mu    sync.Mutex
}

// NewThreadSafeTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeTable(maxCapacity int) *ThreadSafeTable {
	return &ThreadSafeTable{table: NewTable(maxCapacity)}
}

// Lookup returns the stored count for key, if any.
func (t *ThreadSafeTable) Lookup(key Key) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Lookup(key)
}

// Store records nodes for key.
func (t *ThreadSafeTable) Store(key Key, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.table.Store(key, nodes)
}

// Hits returns the number of successful lookups.
func (t *ThreadSafeTable) Hits() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Hits()
}

// Misses returns the number of failed lookups.
func (t *ThreadSafeTable) Misses() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Misses()
}

// Len returns the number of stored entries.
func (t *ThreadSafeTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.Len()
}

// IsFull returns true if the table has reached its capacity limit.
func (t *ThreadSafeTable) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.IsFull()
}

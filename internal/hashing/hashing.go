// Package hashing provides position hashing and a transposition table for
// perft node counts.
package hashing

// Key identifies a subtree: the position hash and the depth counted below it.
type Key struct {
	Hash  uint64
	Depth int
}

// Table maps subtrees to their leaf counts.
type Table struct {
	entries map[Key]uint64
	// maxCapacity limits entries (0 = unlimited)
	maxCapacity int
	hits        int
	misses      int
}

// NewTable creates a new table.
// maxCapacity of 0 means unlimited capacity.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[Key]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the stored count for key, if any.
func (t *Table) Lookup(key Key) (uint64, bool) {
	nodes, ok := t.entries[key]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records nodes for key. Once the table is full, new keys are dropped;
// existing keys are still updated.
func (t *Table) Store(key Key, nodes uint64) {
	if _, ok := t.entries[key]; !ok && t.IsFull() {
		return
	}
	t.entries[key] = nodes
}

// Hits returns the number of successful lookups.
func (t *Table) Hits() int {
	return t.hits
}

// Misses returns the number of failed lookups.
func (t *Table) Misses() int {
	return t.misses
}

// Len returns the number of stored entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

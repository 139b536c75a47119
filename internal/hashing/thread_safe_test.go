package hashing

import (
	"sync"
	"testing"
)

func TestThreadSafeTable_Concurrent(t *testing.T) {
	table := NewThreadSafeTable(0)

	const numKeys = 100
	const numWorkers = 10

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numKeys; j++ {
				key := Key{Hash: uint64(j), Depth: 2}
				if _, ok := table.Lookup(key); !ok {
					table.Store(key, uint64(j*j))
				}
			}
		}()
	}
	wg.Wait()

	if table.Len() != numKeys {
		t.Errorf("Len() = %d; want %d", table.Len(), numKeys)
	}
	for j := 0; j < numKeys; j++ {
		if nodes, ok := table.Lookup(Key{Hash: uint64(j), Depth: 2}); !ok || nodes != uint64(j*j) {
			t.Fatalf("key %d = %d, %v; want %d", j, nodes, ok, j*j)
		}
	}
	if table.Hits() < numKeys {
		t.Errorf("Hits() = %d; want at least %d", table.Hits(), numKeys)
	}
	if lookups := table.Hits() + table.Misses(); lookups != numWorkers*numKeys+numKeys {
		t.Errorf("Hits()+Misses() = %d; want %d", lookups, numWorkers*numKeys+numKeys)
	}
}

func TestThreadSafeTable_Capacity(t *testing.T) {
	table := NewThreadSafeTable(1)
	table.Store(Key{Hash: 1}, 1)
	table.Store(Key{Hash: 2}, 2)

	if !table.IsFull() {
		t.Error("IsFull() = false at capacity")
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d; want 1", table.Len())
	}
}

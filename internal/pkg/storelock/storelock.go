package storelock

import "sync"

// Map hands out one mutex per store so the conflict-check-then-insert
// sequence is serialized per store within the process. Entries are never
// evicted; the set of stores is small and long-lived.
type Map struct {
	mu sync.Map // store ID -> *sync.Mutex
}

func New() *Map {
	return &Map{}
}

func (m *Map) Get(storeID string) *sync.Mutex {
	v, _ := m.mu.LoadOrStore(storeID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

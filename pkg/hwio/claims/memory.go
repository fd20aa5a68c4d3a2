package claims

import (
	"sync"
)

// MemoryStore is an in-memory claim journal for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event // resource -> events in append order
	closed bool
}

// NewMemoryStore creates a new in-memory claim journal.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		events: make(map[string][]Event),
	}
}

// Append implements Store.
func (m *MemoryStore) Append(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	m.events[ev.Resource] = append(m.events[ev.Resource], ev)
	return nil
}

// Events implements Store.
func (m *MemoryStore) Events(resource string) ([]Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	// Return a copy so the caller cannot mutate the journal.
	evs := m.events[resource]
	out := make([]Event, len(evs))
	copy(out, evs)
	return out, nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

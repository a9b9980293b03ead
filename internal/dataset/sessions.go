package dataset

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions maps session IDs to their stores. Each session exclusively owns
// its dataset; there is no cross-session sharing.
type Sessions struct {
	mu     sync.RWMutex
	stores map[uuid.UUID]*Store
}

// NewSessions returns an empty session registry.
func NewSessions() *Sessions {
	return &Sessions{stores: make(map[uuid.UUID]*Store)}
}

// Get returns the store for id, creating it on first use.
func (s *Sessions) Get(id uuid.UUID) *Store {
	s.mu.RLock()
	store, ok := s.stores[id]
	s.mu.RUnlock()
	if ok {
		return store
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if store, ok = s.stores[id]; ok {
		return store
	}
	store = NewStore()
	s.stores[id] = store
	return store
}

// Count returns the number of live sessions.
func (s *Sessions) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stores)
}

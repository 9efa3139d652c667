package templates

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory template store for tests and single-process
// embedding. Nothing is persisted.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Stored
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Stored)}
}

// Load returns all stored templates.
func (s *MemoryStore) Load(ctx context.Context) ([]Stored, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Stored, 0, len(s.items))
	for _, t := range s.items {
		out = append(out, t)
	}
	return out, nil
}

// Save stores a template by id.
func (s *MemoryStore) Save(ctx context.Context, t Stored) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[t.ID] = t
	return nil
}

// Delete removes a template by id.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

// Close does nothing for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)

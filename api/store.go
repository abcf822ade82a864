// Package api - In-memory quote version store
package api

import (
	"sync"

	"wireless-quote/core/engine"
)

// VersionStore holds immutable quote version snapshots in memory. It is a
// host convenience for the API; durable persistence belongs to the caller.
type VersionStore struct {
	mu       sync.RWMutex
	versions map[string]engine.QuoteVersion
	order    []string
}

// NewVersionStore creates an empty store
func NewVersionStore() *VersionStore {
	return &VersionStore{
		versions: make(map[string]engine.QuoteVersion),
	}
}

// Save stores a snapshot. Snapshots are never overwritten: each carries a
// freshly generated id.
func (s *VersionStore) Save(v engine.QuoteVersion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.versions[v.ID]; !exists {
		s.order = append(s.order, v.ID)
	}
	s.versions[v.ID] = v
}

// Get returns a snapshot by id
func (s *VersionStore) Get(id string) (engine.QuoteVersion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.versions[id]
	return v, ok
}

// List returns all snapshots in save order
func (s *VersionStore) List() []engine.QuoteVersion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]engine.QuoteVersion, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.versions[id])
	}
	return out
}

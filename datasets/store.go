// Package datasets keeps the uploaded scenario tables in memory for the
// lifetime of the process. One table is held per browser session, addressed
// by the id carried in the session cookie; uploading again replaces the
// session's table wholesale.
package datasets

import (
	"sync"

	"github.com/google/uuid"

	"scenarioboard/explorer"
)

// CookieName is the session cookie carrying the active dataset id.
const CookieName = "dataset_id"

// Store is an in-memory map of dataset id to loaded table. Tables are
// immutable once stored; the mutex only guards the map itself.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*explorer.Table
}

func NewStore() *Store {
	return &Store{tables: make(map[string]*explorer.Table)}
}

// Put stores a freshly loaded table and returns its new id.
func (s *Store) Put(t *explorer.Table) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.tables[id] = t
	s.mu.Unlock()
	return id
}

// Replace stores t under an existing id, discarding whatever table that
// session held before. An unknown id falls back to Put.
func (s *Store) Replace(id string, t *explorer.Table) string {
	if id == "" {
		return s.Put(t)
	}
	s.mu.Lock()
	s.tables[id] = t
	s.mu.Unlock()
	return id
}

// Get returns the table for id, or nil when the session has no dataset.
func (s *Store) Get(id string) *explorer.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables[id]
}

// Delete discards the table for id.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.tables, id)
	s.mu.Unlock()
}

// Len reports how many datasets are currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tables)
}

// Package memory keeps categories in process memory. It is the default
// storage driver for local runs and tests; writes go through the request's
// unit of work like every other driver.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
)

// record is the stored form of a category. Categories are copied in and out
// so that callers never share state with the store.
type record struct {
	id          uuid.UUID
	name        string
	description string
	isActive    bool
	createdAt   time.Time
}

func toRecord(c *category.Category) record {
	return record{
		id:          c.ID(),
		name:        c.Name(),
		description: c.Description(),
		isActive:    c.IsActive(),
		createdAt:   c.CreatedAt(),
	}
}

func (r record) toCategory() (*category.Category, error) {
	return category.Restore(r.id, r.name, r.description, r.isActive, r.createdAt)
}

// Store is a concurrency-safe map of categories keyed by ID.
type Store struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]record
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{categories: make(map[uuid.UUID]record)}
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "memory" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(_ context.Context) error { return nil }

// Len returns the number of stored categories.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories)
}

func (s *Store) get(id uuid.UUID) (record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.categories[id]
	return r, ok
}

func (s *Store) insert(r record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.categories[r.id]; exists {
		return domain.ErrConflict
	}
	s.categories[r.id] = r
	return nil
}

// replace swaps the stored record and returns the previous one.
func (s *Store) replace(r record) (record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, exists := s.categories[r.id]
	if !exists {
		return record{}, domain.ErrNotFound
	}
	s.categories[r.id] = r
	return prev, nil
}

func (s *Store) put(r record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[r.id] = r
}

func (s *Store) delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.categories, id)
}

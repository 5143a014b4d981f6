// Package store persists inquiry records retrieved from the provider.
package store

import (
	"context"
	"sort"
	"sync"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return sentinel.ErrNotFound when the requested inquiry does not exist
// - Return nil for successful operations
// - Return wrapped errors with context for infrastructure failures

// InMemoryStore keeps inquiry records in memory for tests and demo mode.
type InMemoryStore struct {
	mu        sync.RWMutex
	inquiries map[string]*models.Inquiry
}

// NewInMemory constructs an empty in-memory inquiry store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{inquiries: make(map[string]*models.Inquiry)}
}

func (s *InMemoryStore) Save(_ context.Context, inq *models.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *inq
	s.inquiries[inq.ID] = &copied
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inq, ok := s.inquiries[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *inq
	return &copied, nil
}

func (s *InMemoryStore) List(_ context.Context) ([]*models.Inquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Inquiry, 0, len(s.inquiries))
	for _, inq := range s.inquiries {
		copied := *inq
		out = append(out, &copied)
	}
	// Newest first, matching the postgres store ordering.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

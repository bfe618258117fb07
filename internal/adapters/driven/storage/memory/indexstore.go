package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
)

// Ensure IndexStore implements the interface.
var _ driven.IndexStore = (*IndexStore)(nil)

// IndexStore is an in-memory implementation of driven.IndexStore.
type IndexStore struct {
	mu   sync.RWMutex
	meta *domain.IndexMetadata
}

// NewIndexStore creates a new in-memory index store.
func NewIndexStore() *IndexStore {
	return &IndexStore{}
}

// SaveIndex replaces the stored vocabulary.
func (s *IndexStore) SaveIndex(_ context.Context, meta *domain.IndexMetadata) error {
	if meta == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *meta
	s.meta = &cp
	return nil
}

// GetIndex returns the stored vocabulary.
func (s *IndexStore) GetIndex(_ context.Context) (*domain.IndexMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.meta == nil {
		return &domain.IndexMetadata{
			Files:      map[string]string{},
			Priorities: []string{},
			Tags:       []string{},
		}, nil
	}
	cp := *s.meta
	return &cp, nil
}

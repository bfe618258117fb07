package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
	"github.com/custodia-labs/orgsync/internal/logger"
	"github.com/custodia-labs/orgsync/internal/orgparser"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService stores the vocabulary of the index document.
type IndexService struct {
	indexStore driven.IndexStore
}

// NewIndexService creates a new index service.
func NewIndexService(indexStore driven.IndexStore) *IndexService {
	return &IndexService{indexStore: indexStore}
}

// Sync parses the index text and replaces the stored vocabulary.
func (s *IndexService) Sync(ctx context.Context, text string) (*domain.IndexMetadata, error) {
	meta := orgparser.ParseIndex(text)
	if err := s.indexStore.SaveIndex(ctx, meta); err != nil {
		return nil, fmt.Errorf("save index: %w", err)
	}

	logger.Debug("Index: %d files, %d todo sets, %d priorities, %d tags",
		len(meta.Files), len(meta.Todos), len(meta.Priorities), len(meta.Tags))
	return meta, nil
}

// Get returns the stored vocabulary.
func (s *IndexService) Get(ctx context.Context) (*domain.IndexMetadata, error) {
	return s.indexStore.GetIndex(ctx)
}

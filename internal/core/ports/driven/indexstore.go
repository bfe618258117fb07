package driven

import (
	"context"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

// IndexStore persists the vocabulary of the index document.
type IndexStore interface {
	// SaveIndex replaces the stored vocabulary.
	SaveIndex(ctx context.Context, meta *domain.IndexMetadata) error

	// GetIndex returns the stored vocabulary.
	// An empty IndexMetadata is returned when nothing was saved yet.
	GetIndex(ctx context.Context) (*domain.IndexMetadata, error)
}

package driving

import (
	"context"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

// SearchService finds headings across parsed files.
type SearchService interface {
	// Search matches the query against titles and payloads. An empty
	// query matches every heading that passes the filters.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)
}

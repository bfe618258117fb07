package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
	"github.com/custodia-labs/orgsync/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

const (
	defaultSearchLimit = 20
	titleScore         = 2.0
	payloadScore       = 1.0
)

// SearchService scans rebuilt outlines for matching headings.
type SearchService struct {
	outline driving.OutlineService
}

// NewSearchService creates a new search service.
func NewSearchService(outline driving.OutlineService) *SearchService {
	return &SearchService{outline: outline}
}

// Search matches the query case-insensitively against each heading's
// title and payload. Results are ordered by score, then file name, then
// document order.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" && opts.Todo == "" && opts.Tag == "" {
		logger.Debug("Empty query and no filters, returning no results")
		return []domain.SearchResult{}, nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	offset := max(opts.Offset, 0)
	logger.Debug("Limit: %d, Offset: %d", limit, offset)

	files, err := s.outline.ListFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	results := []domain.SearchResult{}
	for i := range files {
		if len(opts.Files) > 0 && !slices.Contains(opts.Files, files[i].Name) {
			continue
		}
		outline, err := s.outline.Get(ctx, files[i].Name)
		if err != nil {
			logger.Warn("Search skipped %s: %v", files[i].Name, err)
			continue
		}
		results = append(results, searchOutline(outline, query, opts)...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].File < results[j].File
	})
	logger.Info("Search matched %d headings", len(results))

	if offset >= len(results) {
		return []domain.SearchResult{}, nil
	}
	results = results[offset:]
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// searchOutline walks one tree keeping the ancestor titles of each node.
func searchOutline(outline *driving.Outline, query string, opts domain.SearchOptions) []domain.SearchResult {
	var results []domain.SearchResult
	var path []string

	var visit func(n *driving.OutlineNode)
	visit = func(n *driving.OutlineNode) {
		if n.Node.Depth > 0 {
			if r, ok := matchNode(n, query, opts); ok {
				r.File = outline.File.Name
				r.Path = slices.Clone(path)
				results = append(results, r)
			}
			path = append(path, n.Node.Title)
		}
		for _, c := range n.Children {
			visit(c)
		}
		if n.Node.Depth > 0 {
			path = path[:len(path)-1]
		}
	}
	visit(outline.Root)
	return results
}

func matchNode(n *driving.OutlineNode, query string, opts domain.SearchOptions) (domain.SearchResult, bool) {
	if opts.Todo != "" && n.Node.Todo != opts.Todo {
		return domain.SearchResult{}, false
	}
	if opts.Tag != "" &&
		!slices.Contains(n.Node.TagList(), opts.Tag) &&
		!slices.Contains(n.Node.InheritedTagList(), opts.Tag) {
		return domain.SearchResult{}, false
	}

	r := domain.SearchResult{Node: n.Node}
	if query == "" {
		r.Score = titleScore
		return r, true
	}

	if strings.Contains(strings.ToLower(n.Node.Title), query) {
		r.Score += titleScore
	}
	for _, line := range strings.Split(n.Payload, "\n") {
		if strings.Contains(strings.ToLower(line), query) {
			r.Highlights = append(r.Highlights, strings.TrimSpace(line))
		}
	}
	if len(r.Highlights) > 0 {
		r.Score += payloadScore
	}
	return r, r.Score > 0
}

package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
	"github.com/custodia-labs/orgsync/internal/logger"
	"github.com/custodia-labs/orgsync/internal/orgparser"
)

// Ensure ParseService implements the interface.
var _ driving.ParseService = (*ParseService)(nil)

// ParseService runs the outline parser inside a node store transaction.
type ParseService struct {
	nodeStore  driven.NodeStore
	indexStore driven.IndexStore
	prefs      driven.PreferenceStore
}

// NewParseService creates a new parse service.
// indexStore is optional; without it headings use the default todo keywords.
func NewParseService(
	nodeStore driven.NodeStore,
	indexStore driven.IndexStore,
	prefs driven.PreferenceStore,
) *ParseService {
	return &ParseService{
		nodeStore:  nodeStore,
		indexStore: indexStore,
		prefs:      prefs,
	}
}

// Parse reads one outline document and replaces the stored nodes of the
// file with the same name. Any failure rolls the whole parse back.
func (s *ParseService) Parse(ctx context.Context, req driving.ParseRequest, r io.Reader) (*driving.ParseResult, error) {
	if req.Name == "" || r == nil {
		return nil, domain.ErrInvalidInput
	}
	defer logger.Timed("parse " + req.Name)()

	parser, err := s.newParser(ctx)
	if err != nil {
		return nil, err
	}

	file := &domain.OrgFile{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Alias:    req.Alias,
		Checksum: req.Checksum,
		ParsedAt: time.Now().UTC(),
	}

	sink, err := s.nodeStore.BeginParse(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("begin parse: %w", err)
	}

	stats, err := parser.Parse(ctx, file, r, sink)
	if err != nil {
		if rbErr := sink.Rollback(); rbErr != nil {
			logger.Warn("rollback %s: %v", file.Name, rbErr)
		}
		return nil, fmt.Errorf("parse %s: %w", file.Name, err)
	}

	if err := sink.Commit(); err != nil {
		return nil, fmt.Errorf("commit %s: %w", file.Name, err)
	}

	logger.Info("Parsed %s: %d nodes, %d payload lines", file.Name, stats.Nodes, stats.PayloadLines)

	return &driving.ParseResult{
		File:         *file,
		Nodes:        stats.Nodes,
		PayloadLines: stats.PayloadLines,
	}, nil
}

// newParser reads the excluded tags and todo vocabulary once per parse.
func (s *ParseService) newParser(ctx context.Context) (*orgparser.Parser, error) {
	var todos map[string]bool
	if s.indexStore != nil {
		meta, err := s.indexStore.GetIndex(ctx)
		if err != nil {
			return nil, fmt.Errorf("load index: %w", err)
		}
		todos = meta.TodoKeywords()
	}

	var excluded orgparser.TagSet
	if s.prefs != nil {
		excluded = orgparser.NewTagSet(s.prefs.ExcludedTags()...)
	}

	return orgparser.New(orgparser.NewClassifier(todos), excluded), nil
}

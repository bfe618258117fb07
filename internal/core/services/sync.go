package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
	"github.com/custodia-labs/orgsync/internal/logger"
	"github.com/custodia-labs/orgsync/internal/orgparser"
)

// Names of the staging files every sync directory carries.
const (
	IndexFileName     = "index.org"
	ChecksumsFileName = "checksums.dat"
)

// Ensure SyncService implements the interface.
var _ driving.SyncService = (*SyncService)(nil)

// SyncService reparses the outline files of a staging directory whose
// checksums changed since they were last stored.
type SyncService struct {
	index     driving.IndexService
	parser    driving.ParseService
	nodeStore driven.NodeStore
}

// NewSyncService creates a new sync service.
func NewSyncService(index driving.IndexService, parser driving.ParseService, nodeStore driven.NodeStore) *SyncService {
	return &SyncService{
		index:     index,
		parser:    parser,
		nodeStore: nodeStore,
	}
}

// SyncDir syncs the index vocabulary, then parses every indexed file
// whose checksum differs from the stored one. A file with no checksum
// entry is always parsed. The first parse failure stops the sync.
func (s *SyncService) SyncDir(ctx context.Context, dir string) (*driving.SyncReport, error) {
	logger.Section("Sync " + dir)
	defer logger.Timed("sync " + dir)()

	indexText, err := os.ReadFile(filepath.Join(dir, IndexFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, domain.ErrIndexMissing)
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	meta, err := s.index.Sync(ctx, string(indexText))
	if err != nil {
		return nil, err
	}

	checksums := map[string]string{}
	sums, err := os.ReadFile(filepath.Join(dir, ChecksumsFileName))
	switch {
	case err == nil:
		checksums = orgparser.ParseChecksums(string(sums))
	case errors.Is(err, os.ErrNotExist):
		logger.Warn("%s has no %s, parsing every file", dir, ChecksumsFileName)
	default:
		return nil, fmt.Errorf("read checksums: %w", err)
	}

	names := make([]string, 0, len(meta.Files))
	for name := range meta.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &driving.SyncReport{
		Parsed:    []string{},
		Unchanged: []string{},
		Missing:   []string{},
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		sum := checksums[name]
		if sum != "" && s.storedChecksum(ctx, name) == sum {
			report.Unchanged = append(report.Unchanged, name)
			continue
		}

		parsed, err := s.parseFile(ctx, dir, name, meta.Files[name], sum)
		if err != nil {
			return report, err
		}
		if !parsed {
			report.Missing = append(report.Missing, name)
			continue
		}
		report.Parsed = append(report.Parsed, name)
	}

	logger.Info("Sync %s: %d parsed, %d unchanged, %d missing",
		dir, len(report.Parsed), len(report.Unchanged), len(report.Missing))
	return report, nil
}

func (s *SyncService) storedChecksum(ctx context.Context, name string) string {
	file, err := s.nodeStore.GetFile(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("lookup %s: %v", name, err)
		}
		return ""
	}
	return file.Checksum
}

// parseFile reports false when the file does not exist on disk.
func (s *SyncService) parseFile(ctx context.Context, dir, name, alias, checksum string) (bool, error) {
	f, err := os.Open(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("%s listed in index but missing", name)
			return false, nil
		}
		return false, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	req := driving.ParseRequest{Name: name, Alias: alias, Checksum: checksum}
	if _, err := s.parser.Parse(ctx, req, f); err != nil {
		return false, err
	}
	return true, nil
}

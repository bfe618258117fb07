package driving

import (
	"context"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

// IndexService reads the MobileOrg index document.
type IndexService interface {
	// Sync parses an index document and stores its vocabulary.
	Sync(ctx context.Context, text string) (*domain.IndexMetadata, error)

	// Get returns the stored vocabulary.
	Get(ctx context.Context) (*domain.IndexMetadata, error)
}

// SyncService brings the node store in line with a staging directory.
type SyncService interface {
	// SyncDir reads index.org and checksums.dat from dir and reparses
	// every listed file whose checksum changed since the last sync.
	SyncDir(ctx context.Context, dir string) (*SyncReport, error)
}

// SyncReport describes what a directory sync did.
type SyncReport struct {
	// Parsed lists files that were (re)parsed.
	Parsed []string `json:"parsed"`

	// Unchanged lists files skipped because their checksum matched.
	Unchanged []string `json:"unchanged"`

	// Missing lists files named by the index but absent on disk.
	Missing []string `json:"missing"`
}

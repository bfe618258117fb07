package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

// ParseService parses outline documents into the node store.
type ParseService interface {
	// Parse reads one outline document and replaces any nodes stored
	// for a file of the same name. The whole parse is one transaction.
	Parse(ctx context.Context, req ParseRequest, r io.Reader) (*ParseResult, error)
}

// ParseRequest identifies the document being parsed.
type ParseRequest struct {
	// Name is the file name relative to the sync directory.
	Name string

	// Alias is the display name, usually from the index document.
	Alias string

	// Checksum is recorded with the file after a successful parse.
	Checksum string
}

// ParseResult summarises a committed parse.
type ParseResult struct {
	// File is the stored file with its root node assigned.
	File domain.OrgFile

	// Nodes is the number of heading nodes inserted.
	Nodes int

	// PayloadLines is the number of non-empty body lines recorded.
	PayloadLines int
}

package driven

import (
	"context"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

// NodeStore persists outline files and their nodes.
// Backed by SQLite for metadata storage.
type NodeStore interface {
	// BeginParse opens the transaction one parse writes into.
	// Any nodes previously stored for a file with the same name are
	// removed, the file row is written, and a depth-0 root node is
	// created. On return file.ID and file.RootNodeID are set.
	// Nothing is visible to readers until the sink commits.
	BeginParse(ctx context.Context, file *domain.OrgFile) (NodeSink, error)

	// GetFile retrieves a file by name.
	GetFile(ctx context.Context, name string) (*domain.OrgFile, error)

	// ListFiles returns all parsed files ordered by name.
	ListFiles(ctx context.Context) ([]domain.OrgFile, error)

	// ListNodes returns the nodes of a file in insertion order,
	// the root node first.
	ListNodes(ctx context.Context, fileID string) ([]domain.Node, error)

	// ListPayloads returns the payloads of a file's nodes.
	ListPayloads(ctx context.Context, fileID string) ([]domain.Payload, error)
}

// NodeSink receives the output of a single parse.
// Callers must finish with exactly one of Commit or Rollback.
type NodeSink interface {
	// InsertNode stores a node and returns its assigned ID.
	InsertNode(ctx context.Context, node *domain.Node) (int64, error)

	// InsertPayload stores the body text and timestamps of a node.
	InsertPayload(ctx context.Context, nodeID int64, text string, timestamps domain.TimestampRecord) error

	// Commit makes every write since BeginParse visible.
	Commit() error

	// Rollback discards every write since BeginParse.
	Rollback() error
}

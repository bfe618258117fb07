package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
)

// Ensure NodeStore implements the interface.
var _ driven.NodeStore = (*NodeStore)(nil)

// NodeStore is an in-memory implementation of driven.NodeStore.
// Writes made through a sink are staged and only become visible on Commit.
type NodeStore struct {
	mu       sync.RWMutex
	files    map[string]domain.OrgFile // by name
	nodes    map[string][]domain.Node  // by file ID
	payloads map[string][]domain.Payload
	nextID   int64
}

// NewNodeStore creates a new in-memory node store.
func NewNodeStore() *NodeStore {
	return &NodeStore{
		files:    make(map[string]domain.OrgFile),
		nodes:    make(map[string][]domain.Node),
		payloads: make(map[string][]domain.Payload),
	}
}

func (s *NodeStore) allocID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	return s.nextID
}

// BeginParse stages a replacement node set for the file.
func (s *NodeStore) BeginParse(_ context.Context, file *domain.OrgFile) (driven.NodeSink, error) {
	if file == nil || file.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.RLock()
	existing, ok := s.files[file.Name]
	s.mu.RUnlock()
	if ok {
		file.ID = existing.ID
	} else if file.ID == "" {
		return nil, domain.ErrInvalidInput
	}
	if file.ParsedAt.IsZero() {
		file.ParsedAt = time.Now().UTC()
	}

	root := domain.Node{ID: s.allocID(), FileID: file.ID, Title: file.DisplayName()}
	file.RootNodeID = root.ID

	return &nodeSink{
		store: s,
		file:  *file,
		nodes: []domain.Node{root},
	}, nil
}

// GetFile retrieves a file by name.
func (s *NodeStore) GetFile(_ context.Context, name string) (*domain.OrgFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	file, ok := s.files[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &file, nil
}

// ListFiles returns all files ordered by name.
func (s *NodeStore) ListFiles(_ context.Context) ([]domain.OrgFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.OrgFile, 0, len(s.files))
	for _, f := range s.files {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ListNodes returns the nodes of a file in insertion order.
func (s *NodeStore) ListNodes(_ context.Context, fileID string) ([]domain.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Node(nil), s.nodes[fileID]...), nil
}

// ListPayloads returns the payloads of a file's nodes.
func (s *NodeStore) ListPayloads(_ context.Context, fileID string) ([]domain.Payload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Payload(nil), s.payloads[fileID]...), nil
}

// nodeSink stages one parse.
type nodeSink struct {
	store    *NodeStore
	file     domain.OrgFile
	nodes    []domain.Node
	payloads []domain.Payload
	done     bool
}

func (k *nodeSink) InsertNode(_ context.Context, node *domain.Node) (int64, error) {
	if k.done {
		return 0, domain.ErrTransactionClosed
	}
	n := *node
	n.ID = k.store.allocID()
	k.nodes = append(k.nodes, n)
	return n.ID, nil
}

func (k *nodeSink) InsertPayload(_ context.Context, nodeID int64, text string, ts domain.TimestampRecord) error {
	if k.done {
		return domain.ErrTransactionClosed
	}
	record := make(domain.TimestampRecord, len(ts))
	for kind, v := range ts {
		record[kind] = v
	}
	k.payloads = append(k.payloads, domain.Payload{NodeID: nodeID, Text: text, Timestamps: record})
	return nil
}

func (k *nodeSink) Commit() error {
	if k.done {
		return domain.ErrTransactionClosed
	}
	k.done = true

	k.store.mu.Lock()
	defer k.store.mu.Unlock()
	k.store.files[k.file.Name] = k.file
	k.store.nodes[k.file.ID] = k.nodes
	k.store.payloads[k.file.ID] = k.payloads
	return nil
}

func (k *nodeSink) Rollback() error {
	k.done = true
	return nil
}

package services

import (
	"context"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// Ensure OutlineService implements the interface.
var _ driving.OutlineService = (*OutlineService)(nil)

// outlineCacheSize bounds the number of rebuilt trees kept in memory.
const outlineCacheSize = 64

// OutlineService rebuilds node trees from the store.
// Rebuilt trees are cached by file until the file is parsed again.
type OutlineService struct {
	nodeStore driven.NodeStore
	cache     *lru.Cache[string, *driving.Outline]
}

// NewOutlineService creates a new outline service.
func NewOutlineService(nodeStore driven.NodeStore) *OutlineService {
	// lru.New only fails for a non-positive size.
	cache, _ := lru.New[string, *driving.Outline](outlineCacheSize)
	return &OutlineService{nodeStore: nodeStore, cache: cache}
}

// ListFiles returns all parsed files.
func (s *OutlineService) ListFiles(ctx context.Context) ([]domain.OrgFile, error) {
	return s.nodeStore.ListFiles(ctx)
}

// Get rebuilds the tree of the named file. Children are ordered by
// position, then by insertion order. The returned tree is shared and
// must not be modified.
func (s *OutlineService) Get(ctx context.Context, name string) (*driving.Outline, error) {
	file, err := s.nodeStore.GetFile(ctx, name)
	if err != nil {
		return nil, err
	}

	// Every parse allocates a fresh root node, so the root id identifies
	// one committed version of the file.
	if cached, ok := s.cache.Get(file.Name); ok && cached.File.RootNodeID == file.RootNodeID {
		return &driving.Outline{File: *file, Root: cached.Root}, nil
	}

	outline, err := s.build(ctx, file)
	if err != nil {
		return nil, err
	}
	s.cache.Add(file.Name, outline)
	return outline, nil
}

func (s *OutlineService) build(ctx context.Context, file *domain.OrgFile) (*driving.Outline, error) {
	nodes, err := s.nodeStore.ListNodes(ctx, file.ID)
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}
	payloads, err := s.nodeStore.ListPayloads(ctx, file.ID)
	if err != nil {
		return nil, fmt.Errorf("list payloads: %w", err)
	}

	byID := make(map[int64]*driving.OutlineNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = &driving.OutlineNode{Node: n}
	}
	for _, p := range payloads {
		if on, ok := byID[p.NodeID]; ok {
			on.Payload = p.Text
			on.Timestamps = p.Timestamps
		}
	}

	root, ok := byID[file.RootNodeID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", file.Name, domain.ErrNoRootNode)
	}

	for _, n := range nodes {
		if n.ID == file.RootNodeID {
			continue
		}
		parent, ok := byID[n.ParentID]
		if !ok {
			parent = root
		}
		parent.Children = append(parent.Children, byID[n.ID])
	}

	root.Walk(func(on *driving.OutlineNode, _ int) {
		sort.SliceStable(on.Children, func(i, j int) bool {
			return on.Children[i].Node.Position < on.Children[j].Node.Position
		})
	})

	return &driving.Outline{File: *file, Root: root}, nil
}

package driving

import (
	"context"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

// OutlineService reads parsed outlines back out of the store.
type OutlineService interface {
	// ListFiles returns all parsed files.
	ListFiles(ctx context.Context) ([]domain.OrgFile, error)

	// Get rebuilds the node tree of a file.
	Get(ctx context.Context, name string) (*Outline, error)
}

// Outline is a parsed file with its node tree.
type Outline struct {
	File domain.OrgFile

	// Root is the depth-0 node holding text before the first heading.
	Root *OutlineNode
}

// OutlineNode is one node with its payload and children in position order.
type OutlineNode struct {
	Node       domain.Node
	Payload    string
	Timestamps domain.TimestampRecord
	Children   []*OutlineNode
}

// Walk visits the node and its descendants depth first.
func (n *OutlineNode) Walk(fn func(node *OutlineNode, level int)) {
	n.walk(fn, 0)
}

func (n *OutlineNode) walk(fn func(node *OutlineNode, level int), level int) {
	fn(n, level)
	for _, c := range n.Children {
		c.walk(fn, level+1)
	}
}

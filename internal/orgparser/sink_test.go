package orgparser

import (
	"context"
	"strings"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
)

const testRootID int64 = 1

// recordingSink keeps every write in order and hands out sequential IDs
// starting after the root.
type recordingSink struct {
	nodes    []domain.Node
	payloads []domain.Payload
	nextID   int64

	// failNodeAt makes the nth InsertNode call (1-based) fail.
	failNodeAt int
	failErr    error
}

var _ driven.NodeSink = (*recordingSink)(nil)

func newRecordingSink() *recordingSink {
	return &recordingSink{nextID: testRootID + 1}
}

func (s *recordingSink) InsertNode(_ context.Context, node *domain.Node) (int64, error) {
	if s.failNodeAt > 0 && len(s.nodes)+1 == s.failNodeAt {
		return 0, s.failErr
	}
	n := *node
	n.ID = s.nextID
	s.nextID++
	s.nodes = append(s.nodes, n)
	return n.ID, nil
}

func (s *recordingSink) InsertPayload(_ context.Context, nodeID int64, text string, ts domain.TimestampRecord) error {
	s.payloads = append(s.payloads, domain.Payload{NodeID: nodeID, Text: text, Timestamps: ts})
	return nil
}

func (s *recordingSink) Commit() error   { return nil }
func (s *recordingSink) Rollback() error { return nil }

func (s *recordingSink) node(title string) domain.Node {
	for _, n := range s.nodes {
		if n.Title == title {
			return n
		}
	}
	return domain.Node{}
}

func (s *recordingSink) payload(nodeID int64) domain.Payload {
	for _, p := range s.payloads {
		if p.NodeID == nodeID {
			return p
		}
	}
	return domain.Payload{}
}

func parseString(p *Parser, text string) (*recordingSink, *Stats, error) {
	sink := newRecordingSink()
	file := &domain.OrgFile{ID: "file-1", Name: "test.org", RootNodeID: testRootID}
	stats, err := p.Parse(context.Background(), file, strings.NewReader(text), sink)
	return sink, stats, err
}

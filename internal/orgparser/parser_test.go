package orgparser

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

func TestHeadingDepth(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"* A", 1},
		{"*** Deep", 3},
		{"*\tTabbed", 1},
		{"* ", 1},
		{"*bold* text", 0},
		{"plain text", 0},
		{" * indented", 0},
		{"*", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, HeadingDepth(tt.line))
		})
	}
}

func TestParse_EndToEndOutline(t *testing.T) {
	sink, stats, err := parseString(New(nil, nil), "* A\nbody1\n** B\nbody2\n* C\n")
	require.NoError(t, err)
	require.Len(t, sink.nodes, 3)
	assert.Equal(t, 3, stats.Nodes)
	assert.Equal(t, 2, stats.PayloadLines)

	a, b, c := sink.node("A"), sink.node("B"), sink.node("C")

	assert.Equal(t, 1, a.Depth)
	assert.Equal(t, 0, a.Position)
	assert.Equal(t, testRootID, a.ParentID)
	assert.Equal(t, "file-1", a.FileID)
	assert.Equal(t, "body1\n", sink.payload(a.ID).Text)

	assert.Equal(t, 2, b.Depth)
	assert.Equal(t, 0, b.Position)
	assert.Equal(t, a.ID, b.ParentID)
	assert.Equal(t, "body2\n", sink.payload(b.ID).Text)

	assert.Equal(t, 1, c.Depth)
	assert.Equal(t, 1, c.Position)
	assert.Equal(t, testRootID, c.ParentID)
	assert.Equal(t, "", sink.payload(c.ID).Text)
}

func TestParse_FlushesEveryNodeOnce(t *testing.T) {
	sink, _, err := parseString(New(nil, nil), "intro\n* A\n** B\n* C\ntail\n")
	require.NoError(t, err)

	// root + 3 headings
	require.Len(t, sink.payloads, 4)
	assert.Equal(t, testRootID, sink.payloads[0].NodeID)
	assert.Equal(t, "intro\n", sink.payloads[0].Text)

	seen := make(map[int64]int)
	for _, p := range sink.payloads {
		seen[p.NodeID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "node %d flushed more than once", id)
	}
	assert.Equal(t, "tail\n", sink.payload(sink.node("C").ID).Text)
}

func TestParse_SubtreeClosedBeforeNextOpens(t *testing.T) {
	sink, _, err := parseString(New(nil, nil), "* A\nbody1\n** B\nbody2\n* C\n")
	require.NoError(t, err)

	// B's payload must be flushed before C is inserted.
	b := sink.node("B")
	c := sink.node("C")
	var bFlush, cFlush int = -1, -1
	for i, p := range sink.payloads {
		if p.NodeID == b.ID {
			bFlush = i
		}
		if p.NodeID == c.ID {
			cFlush = i
		}
	}
	assert.Less(t, bFlush, cFlush)
}

func TestParse_ParentIsNearestShallowerHeading(t *testing.T) {
	text := "* A\n*** A3\n** A2\n**** A4\n* B\n** B2\n"
	sink, _, err := parseString(New(nil, nil), text)
	require.NoError(t, err)

	byID := map[int64]domain.Node{}
	for _, n := range sink.nodes {
		byID[n.ID] = n
	}

	for i, n := range sink.nodes {
		if n.ParentID == testRootID {
			continue
		}
		parent, ok := byID[n.ParentID]
		require.True(t, ok)
		assert.Greater(t, n.Depth, parent.Depth, n.Title)

		// The parent is the closest earlier node with smaller depth.
		for j := i - 1; j >= 0; j-- {
			if sink.nodes[j].Depth < n.Depth {
				assert.Equal(t, sink.nodes[j].ID, parent.ID, n.Title)
				break
			}
		}
	}

	assert.Equal(t, sink.node("A").ID, sink.node("A3").ParentID)
	assert.Equal(t, sink.node("A").ID, sink.node("A2").ParentID)
	assert.Equal(t, sink.node("A2").ID, sink.node("A4").ParentID)
	assert.Equal(t, testRootID, sink.node("B").ParentID)
}

func TestParse_SiblingOrdinals(t *testing.T) {
	text := "* A\n** A1\n** A2\n** A3\n* B\n** B1\n** B2\n* C\n"
	sink, _, err := parseString(New(nil, nil), text)
	require.NoError(t, err)

	expected := map[string]int{
		"A": 0, "A1": 0, "A2": 1, "A3": 2,
		"B": 1, "B1": 0, "B2": 1,
		"C": 2,
	}
	for title, pos := range expected {
		assert.Equal(t, pos, sink.node(title).Position, title)
	}
}

func TestParse_PositionsKeyedByDepthOnly(t *testing.T) {
	// B2 is B's first depth-2 child but continues A1's sequence because
	// the counter is keyed by depth and nothing reseeded it.
	text := "* A\n** A1\n* B\n*** b3\n** B2\n"
	sink, _, err := parseString(New(nil, nil), text)
	require.NoError(t, err)

	assert.Equal(t, 0, sink.node("A1").Position)
	assert.Equal(t, 0, sink.node("b3").Position)
	assert.Equal(t, 1, sink.node("B2").Position)
	assert.Equal(t, sink.node("B").ID, sink.node("B2").ParentID)
}

func TestParse_TagInheritance(t *testing.T) {
	text := "* Projects :work:private:\n** Alpha :urgent:\n*** Task\n** Beta\n* Home\n"
	sink, _, err := parseString(New(nil, NewTagSet("private")), text)
	require.NoError(t, err)

	assert.Equal(t, "work:private", sink.node("Projects").Tags)
	assert.Equal(t, "", sink.node("Projects").InheritedTags)

	assert.Equal(t, "urgent", sink.node("Alpha").Tags)
	assert.Equal(t, "work", sink.node("Alpha").InheritedTags)

	// Inheritance reads the nearest ancestor's own filtered tags.
	assert.Equal(t, "urgent", sink.node("Task").InheritedTags)

	assert.Equal(t, "work", sink.node("Beta").InheritedTags)
	assert.Equal(t, "", sink.node("Home").InheritedTags)
}

func TestParse_UntaggedParentPassesEmptyTags(t *testing.T) {
	sink, _, err := parseString(New(nil, nil), "* Parent\n** Child :x:\n*** Grandchild\n")
	require.NoError(t, err)

	assert.Equal(t, "", sink.node("Child").InheritedTags)
	assert.Equal(t, "x", sink.node("Grandchild").InheritedTags)
}

func TestParse_EmptyLinesContributeNothing(t *testing.T) {
	text := "\n* A\n\nline one\n\n\nline two\n\n"
	sink, stats, err := parseString(New(nil, nil), text)
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two\n", sink.payload(sink.node("A").ID).Text)
	assert.Equal(t, 2, stats.PayloadLines)
}

func TestParse_PayloadLineCount(t *testing.T) {
	text := "pre\n* A\na1\na2\n\n** B\nb1\n*not a heading*\n* C\n"
	sink, stats, err := parseString(New(nil, nil), text)
	require.NoError(t, err)

	total := 0
	for _, p := range sink.payloads {
		total += strings.Count(p.Text, "\n")
	}
	assert.Equal(t, 5, total)
	assert.Equal(t, total, stats.PayloadLines)
}

func TestParse_TimestampsFlushedWithPayload(t *testing.T) {
	text := "* A\nSCHEDULED: <2024-03-01 Fri>\nnotes\n* B\nDEADLINE: <2024-04-01 Mon>\n* C\nplain\n"
	sink, _, err := parseString(New(nil, nil), text)
	require.NoError(t, err)

	a := sink.payload(sink.node("A").ID).Timestamps
	assert.Equal(t, 1, a.Flag(domain.TimestampScheduled))
	assert.Equal(t, 0, a.Flag(domain.TimestampDeadline))
	assert.Equal(t, "2024-03-01 Fri", a[domain.TimestampScheduled])

	b := sink.payload(sink.node("B").ID).Timestamps
	assert.Equal(t, 0, b.Flag(domain.TimestampScheduled))
	assert.Equal(t, 1, b.Flag(domain.TimestampDeadline))

	c := sink.payload(sink.node("C").ID).Timestamps
	assert.Empty(t, c)
}

func TestParse_ClassifiesHeadings(t *testing.T) {
	sink, _, err := parseString(New(NewClassifier(nil), nil), "* TODO [#A] Write report :work:\n")
	require.NoError(t, err)
	require.Len(t, sink.nodes, 1)

	n := sink.nodes[0]
	assert.Equal(t, "Write report", n.Title)
	assert.Equal(t, "TODO", n.Todo)
	assert.Equal(t, "A", n.Priority)
	assert.Equal(t, "work", n.Tags)
}

func TestParse_RequiresRootNode(t *testing.T) {
	p := New(nil, nil)
	_, err := p.Parse(context.Background(), &domain.OrgFile{Name: "x.org"}, strings.NewReader("* A\n"), newRecordingSink())
	assert.ErrorIs(t, err, domain.ErrNoRootNode)
}

func TestParse_SinkErrorAborts(t *testing.T) {
	boom := errors.New("disk full")
	sink := newRecordingSink()
	sink.failNodeAt = 2
	sink.failErr = boom

	file := &domain.OrgFile{ID: "file-1", Name: "test.org", RootNodeID: testRootID}
	_, err := New(nil, nil).Parse(context.Background(), file, strings.NewReader("* A\n* B\n* C\n"), sink)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, sink.nodes, 1)
}

func TestParse_ReadFaultEndsDocument(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("* A\nbody\n"),
		iotest.ErrReader(errors.New("connection reset")),
	)
	sink := newRecordingSink()
	file := &domain.OrgFile{ID: "file-1", Name: "test.org", RootNodeID: testRootID}

	stats, err := New(nil, nil).Parse(context.Background(), file, r, sink)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Nodes)
	assert.Equal(t, "body\n", sink.payload(sink.node("A").ID).Text)
}

func TestParse_FreshStatePerCall(t *testing.T) {
	p := New(nil, nil)

	first, _, err := parseString(p, "* A\n** B\n** C\n")
	require.NoError(t, err)
	second, _, err := parseString(p, "** X\n* Y\n")
	require.NoError(t, err)

	assert.Equal(t, 1, first.node("C").Position)
	assert.Equal(t, 0, second.node("X").Position)
	assert.Equal(t, 0, second.node("Y").Position)
	assert.Equal(t, testRootID, second.node("X").ParentID)
}

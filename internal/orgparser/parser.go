package orgparser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/logger"
)

// maxLineSize bounds a single outline line.
const maxLineSize = 1024 * 1024

var headingStars = regexp.MustCompile(`^(\*+)\s`)

// HeadingDepth returns the number of leading stars of a heading line,
// or 0 when the line is not a heading.
func HeadingDepth(line string) int {
	m := headingStars.FindStringSubmatchIndex(line)
	if m == nil {
		return 0
	}
	return m[3] - m[2]
}

// Parser converts outline documents into nodes written to a NodeSink.
// A Parser holds no per-document state and may be reused; each Parse call
// builds its own stack, position table and payload buffer.
type Parser struct {
	classifier HeadingClassifier
	excluded   TagSet
}

// New creates a parser. excluded tags are dropped from every node's tags
// before they are handed down to children.
func New(classifier HeadingClassifier, excluded TagSet) *Parser {
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	return &Parser{classifier: classifier, excluded: excluded}
}

// Stats summarises one parse.
type Stats struct {
	Nodes        int
	PayloadLines int
}

// parseState is the mutable state of a single Parse call.
type parseState struct {
	file       *domain.OrgFile
	sink       driven.NodeSink
	stack      *stack
	positions  positions
	payload    strings.Builder
	timestamps domain.TimestampRecord
	stats      Stats
}

// Parse reads r line by line and writes every node and payload to sink.
// file.RootNodeID must already be assigned; text before the first heading
// becomes the root's payload.
//
// A read failure ends the document early and is not returned. Sink errors
// abort the parse and are returned so the caller can roll back.
func (p *Parser) Parse(ctx context.Context, file *domain.OrgFile, r io.Reader, sink driven.NodeSink) (*Stats, error) {
	if file == nil || file.RootNodeID == 0 {
		return nil, domain.ErrNoRootNode
	}

	st := &parseState{
		file:       file,
		sink:       sink,
		stack:      newStack(file.RootNodeID),
		positions:  make(positions),
		timestamps: make(domain.TimestampRecord),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := p.parseLine(ctx, st, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Warn("reading %s stopped early: %v", file.Name, err)
	}

	if err := st.flush(ctx); err != nil {
		return nil, err
	}

	logger.Debug("parsed %s: %d nodes, %d payload lines", file.Name, st.stats.Nodes, st.stats.PayloadLines)
	return &st.stats, nil
}

func (p *Parser) parseLine(ctx context.Context, st *parseState, line string) error {
	if line == "" {
		return nil
	}

	depth := HeadingDepth(line)
	if depth == 0 {
		st.payload.WriteString(line)
		st.payload.WriteByte('\n')
		st.timestamps = ScanTimestamps(st.payload.String())
		st.stats.PayloadLines++
		return nil
	}

	if err := st.flush(ctx); err != nil {
		return err
	}
	return p.openHeading(ctx, st, line, depth)
}

// openHeading closes every open node at depth or deeper and opens a new
// node as a child of whatever remains on top.
func (p *Parser) openHeading(ctx context.Context, st *parseState, line string, depth int) error {
	position := st.positions.next(depth, st.stack.top().depth)

	st.stack.popTo(depth)
	parent := st.stack.top()

	heading := p.classifier.Classify(line, depth)
	node := &domain.Node{
		FileID:        st.file.ID,
		ParentID:      parent.nodeID,
		Depth:         depth,
		Title:         heading.Title,
		Todo:          heading.Todo,
		Priority:      heading.Priority,
		Tags:          heading.Tags,
		InheritedTags: parent.tags,
		Position:      position,
	}

	id, err := st.sink.InsertNode(ctx, node)
	if err != nil {
		return fmt.Errorf("inserting node %q: %w", heading.Title, err)
	}
	st.stats.Nodes++

	st.stack.push(stackEntry{
		depth:  depth,
		nodeID: id,
		tags:   FilterTags(heading.Tags, p.excluded),
	})
	return nil
}

// flush writes the buffered payload for the node on top of the stack and
// resets the buffer.
func (st *parseState) flush(ctx context.Context) error {
	nodeID := st.stack.top().nodeID
	if err := st.sink.InsertPayload(ctx, nodeID, st.payload.String(), st.timestamps); err != nil {
		return fmt.Errorf("inserting payload for node %d: %w", nodeID, err)
	}
	st.payload.Reset()
	st.timestamps = make(domain.TimestampRecord)
	return nil
}

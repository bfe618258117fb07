package domain

import "strings"

// Node represents one heading of an outline document.
// Nodes are immutable once handed to a NodeSink; the sink assigns the ID.
type Node struct {
	// ID is assigned by the store on insertion.
	ID int64

	// FileID links to the OrgFile the node belongs to.
	FileID string

	// ParentID is the nearest open ancestor at insertion time,
	// or the file's root node for top-level headings.
	ParentID int64

	// Depth is the number of leading stars. The root node has depth 0.
	Depth int

	// Title is the heading text with todo state, priority and tags removed.
	Title string

	// Todo is the todo keyword, empty when the heading has none.
	Todo string

	// Priority is the priority cookie letter, empty when absent.
	Priority string

	// Tags is the raw colon-joined tag string of this heading only.
	Tags string

	// InheritedTags is the filtered tag string of the parent at the
	// moment this node was opened.
	InheritedTags string

	// Position is the 0-based ordinal among siblings at the same depth.
	Position int
}

// TagList splits the raw tag string into individual tags.
func (n *Node) TagList() []string {
	return splitTags(n.Tags)
}

// InheritedTagList splits the inherited tag string into individual tags.
func (n *Node) InheritedTagList() []string {
	return splitTags(n.InheritedTags)
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ":")
}

// Heading holds the fields a HeadingClassifier extracts from one heading line.
type Heading struct {
	Title    string
	Todo     string
	Priority string

	// Tags is colon-joined without leading or trailing separators.
	Tags string
}

// Payload is the body text owned by a node together with the
// timestamps detected in it.
type Payload struct {
	NodeID     int64
	Text       string
	Timestamps TimestampRecord
}

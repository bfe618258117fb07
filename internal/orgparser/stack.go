package orgparser

// stackEntry is one open ancestor. tags is already filtered.
type stackEntry struct {
	depth  int
	nodeID int64
	tags   string
}

// stack holds the open ancestors from the root to the last heading.
// Depths strictly increase from bottom to top.
type stack struct {
	entries []stackEntry
}

func newStack(rootID int64) *stack {
	return &stack{entries: []stackEntry{{depth: 0, nodeID: rootID}}}
}

func (s *stack) top() stackEntry {
	return s.entries[len(s.entries)-1]
}

func (s *stack) push(e stackEntry) {
	s.entries = append(s.entries, e)
}

// popTo removes every entry at depth or deeper so that a heading at
// depth can be pushed as a child of the new top. The root never pops
// since headings have depth >= 1.
func (s *stack) popTo(depth int) {
	for len(s.entries) > 1 && s.top().depth >= depth {
		s.entries = s.entries[:len(s.entries)-1]
	}
}

package orgparser

// positions tracks the next sibling ordinal per depth.
//
// Counters are keyed by depth alone, not by parent. Two subtrees at the
// same depth under different parents continue one sequence unless a
// shallower-to-deeper step reseeds the counter in between.
type positions map[int]int

// next returns the ordinal for a heading at depth, given the depth of the
// stack top before any popping.
func (p positions) next(depth, topDepth int) int {
	current, ok := p[depth]
	switch {
	case !ok:
		p[depth] = 0
	case depth <= topDepth:
		p[depth] = current + 1
	default:
		p[depth] = 0
	}
	return p[depth]
}

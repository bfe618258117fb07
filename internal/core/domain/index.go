package domain

// TodoSet maps each keyword of one #+TODO: directive to whether it is a
// done state.
type TodoSet map[string]bool

// IndexMetadata is the vocabulary read from a MobileOrg index document.
type IndexMetadata struct {
	// Files maps file names to their display aliases.
	Files map[string]string

	// Todos holds one TodoSet per #+TODO: directive, in document order.
	Todos []TodoSet

	// Priorities lists the #+ALLPRIORITIES: values in order.
	Priorities []string

	// Tags lists the #+TAGS: vocabulary in order.
	Tags []string
}

// TodoKeywords flattens every todo set into a single keyword -> done map.
// Later directives override earlier ones for the same keyword.
func (m *IndexMetadata) TodoKeywords() map[string]bool {
	out := make(map[string]bool)
	for _, set := range m.Todos {
		for kw, done := range set {
			out[kw] = done
		}
	}
	return out
}

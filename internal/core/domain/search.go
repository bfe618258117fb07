package domain

// SearchOptions configures a node search.
type SearchOptions struct {
	// Limit is the maximum number of results.
	Limit int

	// Offset is the number of results to skip.
	Offset int

	// Files restricts the search to the named files.
	Files []string

	// Todo keeps only nodes with this todo keyword.
	Todo string

	// Tag keeps only nodes carrying this tag, own or inherited.
	Tag string
}

// SearchResult is one matching heading.
type SearchResult struct {
	// File is the name of the file holding the node.
	File string `json:"file"`

	// Node is the matched heading.
	Node Node `json:"node"`

	// Path lists the titles of the node's ancestors, outermost first.
	Path []string `json:"path"`

	// Score ranks title hits above payload hits.
	Score float64 `json:"score"`

	// Highlights holds the payload lines that matched.
	Highlights []string `json:"highlights,omitempty"`
}

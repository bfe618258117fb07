package domain

import "time"

// OrgFile represents one outline document known to the store.
type OrgFile struct {
	// ID is the unique identifier for the file.
	ID string

	// Name is the file name relative to the sync directory.
	Name string

	// Alias is the display name taken from the index document.
	Alias string

	// Checksum is the checksum recorded at the last successful parse.
	Checksum string

	// RootNodeID is the depth-0 node every top-level heading hangs from.
	// It is assigned by the store when a parse begins.
	RootNodeID int64

	// ParsedAt is when the file was last parsed.
	ParsedAt time.Time
}

// DisplayName returns the alias when set, otherwise the file name.
func (f *OrgFile) DisplayName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

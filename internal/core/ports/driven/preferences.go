package driven

// PreferenceStore exposes user preferences consumed by the parser.
type PreferenceStore interface {
	// ExcludedTags returns tag names that must not be inherited.
	ExcludedTags() []string

	// SetExcludedTags replaces the excluded tag list and persists it.
	SetExcludedTags(tags []string) error
}

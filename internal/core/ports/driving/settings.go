package driving

// SettingsService manages user preferences.
type SettingsService interface {
	// ExcludedTags returns the tags that are never inherited.
	ExcludedTags() []string

	// ExcludeTag adds a tag to the excluded set.
	ExcludeTag(tag string) error

	// IncludeTag removes a tag from the excluded set.
	IncludeTag(tag string) error

	// SyncDir returns the default staging directory, or "" when unset.
	SyncDir() string

	// SetSyncDir stores the default staging directory.
	SetSyncDir(dir string) error

	// ClearSyncDir removes the stored staging directory.
	ClearSyncDir() error

	// ConfigKeys lists the keys present in the settings file.
	ConfigKeys() []string

	// ConfigPath returns the path of the settings file.
	ConfigPath() string
}

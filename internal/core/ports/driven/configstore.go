package driven

// ConfigStore holds flat, dot-keyed settings such as "sync.dir".
type ConfigStore interface {
	// GetString returns "" for a missing key or a non-string value.
	GetString(key string) string

	// GetStringSlice returns nil for a missing key or a non-list value.
	GetStringSlice(key string) []string

	// Set stores a value and persists it.
	Set(key string, value any) error

	// Unset removes a key. Removing a missing key is not an error.
	Unset(key string) error

	// Keys lists the stored keys in sorted order.
	Keys() []string

	// Path is where the settings live, or a marker for volatile stores.
	Path() string
}

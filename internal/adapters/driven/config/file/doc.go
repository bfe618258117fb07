// Package file persists settings on local disk: ConfigStore writes
// config.toml and PreferenceStore reads parser preferences out of it.
package file

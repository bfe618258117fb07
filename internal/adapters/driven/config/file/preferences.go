package file

import (
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
)

// KeyExcludedTags holds the tags dropped before inheritance.
const KeyExcludedTags = "org.excluded_tags"

// Ensure PreferenceStore implements the interface.
var _ driven.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore reads parser preferences from a ConfigStore.
type PreferenceStore struct {
	config driven.ConfigStore
}

// NewPreferenceStore wraps a config store.
func NewPreferenceStore(config driven.ConfigStore) *PreferenceStore {
	return &PreferenceStore{config: config}
}

// ExcludedTags returns the tags that are never inherited.
func (p *PreferenceStore) ExcludedTags() []string {
	tags := p.config.GetStringSlice(KeyExcludedTags)
	if tags == nil {
		return []string{}
	}
	return tags
}

// SetExcludedTags replaces and persists the excluded tag list.
func (p *PreferenceStore) SetExcludedTags(tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	return p.config.Set(KeyExcludedTags, tags)
}

package services

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const keySyncDir = "sync.dir"

// SettingsService manages user preferences.
type SettingsService struct {
	prefs       driven.PreferenceStore
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(prefs driven.PreferenceStore, configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		prefs:       prefs,
		configStore: configStore,
	}
}

// ExcludedTags returns the excluded tags in stored order.
func (s *SettingsService) ExcludedTags() []string {
	return s.prefs.ExcludedTags()
}

// ExcludeTag adds a tag to the excluded set. Adding a present tag is a no-op.
func (s *SettingsService) ExcludeTag(tag string) error {
	tag, err := normaliseTag(tag)
	if err != nil {
		return err
	}

	tags := s.prefs.ExcludedTags()
	if slices.Contains(tags, tag) {
		return nil
	}
	return s.prefs.SetExcludedTags(append(tags, tag))
}

// IncludeTag removes a tag from the excluded set.
func (s *SettingsService) IncludeTag(tag string) error {
	tag, err := normaliseTag(tag)
	if err != nil {
		return err
	}

	tags := s.prefs.ExcludedTags()
	idx := slices.Index(tags, tag)
	if idx < 0 {
		return domain.ErrNotFound
	}
	return s.prefs.SetExcludedTags(slices.Delete(tags, idx, idx+1))
}

// SyncDir returns the configured staging directory.
func (s *SettingsService) SyncDir() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.GetString(keySyncDir)
}

// SetSyncDir stores the staging directory as an absolute path.
func (s *SettingsService) SetSyncDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return domain.ErrInvalidInput
	}
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	return s.configStore.Set(keySyncDir, abs)
}

// ClearSyncDir forgets the staging directory.
func (s *SettingsService) ClearSyncDir() error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	return s.configStore.Unset(keySyncDir)
}

// ConfigKeys lists every key present in the settings file.
func (s *SettingsService) ConfigKeys() []string {
	if s.configStore == nil {
		return nil
	}
	return s.configStore.Keys()
}

// ConfigPath returns the path of the settings file.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// normaliseTag accepts "tag" or ":tag:" and rejects tags that could never
// appear in a heading's tag string.
func normaliseTag(tag string) (string, error) {
	tag = strings.Trim(strings.TrimSpace(tag), ":")
	if tag == "" || strings.ContainsAny(tag, ": \t") {
		return "", domain.ErrInvalidInput
	}
	return tag, nil
}

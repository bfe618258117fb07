package file

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/orgsync/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

const configFile = "config.toml"

// ConfigStore keeps dot-keyed settings in <dir>/config.toml. Keys are
// flattened when the file is read and nested into TOML tables when it is
// written, so "sync.dir" lives under [sync].
type ConfigStore struct {
	mu   sync.RWMutex
	path string
	data map[string]any
}

// NewConfigStore opens the config file in dir, creating dir when missing.
// An empty dir means ~/.orgsync. A missing file is an empty config.
func NewConfigStore(dir string) (*ConfigStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".orgsync")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	s := &ConfigStore{path: filepath.Join(dir, configFile)}
	data, err := readConfig(s.path)
	if err != nil {
		return nil, err
	}
	s.data = data
	return s, nil
}

func readConfig(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}

	var nested map[string]any
	if err := toml.Unmarshal(raw, &nested); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return flattenMap(nested, ""), nil
}

func (s *ConfigStore) lookup(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

func (s *ConfigStore) GetString(key string) string {
	str, _ := s.lookup(key).(string)
	return str
}

// GetStringSlice accepts both []string and the []any that TOML arrays
// decode to; non-string elements are skipped.
func (s *ConfigStore) GetStringSlice(key string) []string {
	switch v := s.lookup(key).(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Set stores value under key and rewrites the file.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.write()
}

// Unset removes key and rewrites the file. A missing key leaves the file alone.
func (s *ConfigStore) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.write()
}

func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.data))
}

func (s *ConfigStore) Path() string {
	return s.path
}

// write replaces the file through a temp file in the same directory so a
// crash never leaves a truncated config. Caller holds the lock.
func (s *ConfigStore) write() error {
	raw, err := toml.Marshal(nestMap(s.data))
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".config-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// flattenMap turns {"a": {"b": 1}} into {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		table, ok := value.(map[string]any)
		if !ok {
			out[key] = value
			continue
		}
		maps.Copy(out, flattenMap(table, key))
	}
	return out
}

// nestMap is the inverse of flattenMap. A key whose prefix is already a
// plain value keeps its dotted form at the top level.
func nestMap(flat map[string]any) map[string]any {
	out := make(map[string]any)
	for _, key := range slices.Sorted(maps.Keys(flat)) {
		parts := strings.Split(key, ".")
		if table := descend(out, parts[:len(parts)-1]); table != nil {
			table[parts[len(parts)-1]] = flat[key]
		} else {
			out[key] = flat[key]
		}
	}
	return out
}

// descend walks (creating as needed) the tables named by path, returning
// nil when a segment is already occupied by a non-table value.
func descend(root map[string]any, path []string) map[string]any {
	cur := root
	for _, part := range path {
		next, ok := cur[part]
		if !ok {
			table := make(map[string]any)
			cur[part] = table
			cur = table
			continue
		}
		table, isTable := next.(map[string]any)
		if !isTable {
			return nil
		}
		cur = table
	}
	return cur
}

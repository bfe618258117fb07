package orgparser

import "strings"

// TagSet is a set of tag names.
type TagSet map[string]struct{}

// NewTagSet builds a set from tag names. Empty names are ignored.
func NewTagSet(tags ...string) TagSet {
	set := make(TagSet, len(tags))
	for _, t := range tags {
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

// Contains reports whether tag is in the set.
func (s TagSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// FilterTags drops excluded tags from a colon-joined tag string and
// rejoins the rest in their original order. Empty elements from doubled
// colons are kept as ordinary entries; trailing empty elements are dropped
// so the result never ends in a separator.
func FilterTags(raw string, excluded TagSet) string {
	if len(excluded) == 0 || raw == "" {
		return raw
	}

	parts := strings.Split(raw, ":")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	kept := parts[:0]
	for _, tag := range parts {
		if !excluded.Contains(tag) {
			kept = append(kept, tag)
		}
	}
	return strings.Join(kept, ":")
}

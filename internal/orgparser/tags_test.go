package orgparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterTags(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		excluded TagSet
		expected string
	}{
		{name: "Nil excluded set", raw: "a:b", excluded: nil, expected: "a:b"},
		{name: "Empty excluded set", raw: "a:b", excluded: NewTagSet(), expected: "a:b"},
		{name: "Empty raw tags", raw: "", excluded: NewTagSet("a"), expected: ""},
		{name: "Drops excluded", raw: "work:private:home", excluded: NewTagSet("private"), expected: "work:home"},
		{name: "Drops first and last", raw: "a:b:c", excluded: NewTagSet("a", "c"), expected: "b"},
		{name: "Drops everything", raw: "a:b", excluded: NewTagSet("a", "b"), expected: ""},
		{name: "Nothing excluded matches", raw: "a:b", excluded: NewTagSet("z"), expected: "a:b"},
		{name: "Doubled colon kept", raw: "a::b", excluded: NewTagSet("z"), expected: "a::b"},
		{name: "Doubled colon with exclusion", raw: "a::b", excluded: NewTagSet("a"), expected: ":b"},
		{name: "Trailing separator dropped", raw: "a:b:", excluded: NewTagSet("z"), expected: "a:b"},
		{name: "Trailing separators after exclusion", raw: "a:b::", excluded: NewTagSet("b"), expected: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FilterTags(tt.raw, tt.excluded))
		})
	}
}

func TestFilterTags_Idempotent(t *testing.T) {
	inputs := []string{"", "a", "a:b:c", "x:a:x:b", "a::b", ":a:"}
	sets := []TagSet{nil, NewTagSet("a"), NewTagSet("x", "b"), NewTagSet("")}

	for _, raw := range inputs {
		for _, excluded := range sets {
			once := FilterTags(raw, excluded)
			assert.Equal(t, once, FilterTags(once, excluded), "raw=%q", raw)
		}
	}
}

func TestNewTagSet(t *testing.T) {
	s := NewTagSet("a", "", "b", "a")
	assert.Len(t, s, 2)
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains(""))
}

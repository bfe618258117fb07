package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_TagList(t *testing.T) {
	tests := []struct {
		name     string
		tags     string
		expected []string
	}{
		{name: "Empty", tags: "", expected: nil},
		{name: "Single", tags: "work", expected: []string{"work"}},
		{name: "Multiple", tags: "work:home", expected: []string{"work", "home"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Node{Tags: tt.tags, InheritedTags: tt.tags}
			assert.Equal(t, tt.expected, n.TagList())
			assert.Equal(t, tt.expected, n.InheritedTagList())
		})
	}
}

func TestOrgFile_DisplayName(t *testing.T) {
	f := OrgFile{Name: "todo.org"}
	assert.Equal(t, "todo.org", f.DisplayName())

	f.Alias = "Todo"
	assert.Equal(t, "Todo", f.DisplayName())
}

func TestTimestampRecord_Flag(t *testing.T) {
	r := TimestampRecord{TimestampScheduled: "2024-01-02 Tue"}

	assert.True(t, r.Has(TimestampScheduled))
	assert.Equal(t, 1, r.Flag(TimestampScheduled))
	assert.False(t, r.Has(TimestampDeadline))
	assert.Equal(t, 0, r.Flag(TimestampDeadline))

	var empty TimestampRecord
	assert.Equal(t, 0, empty.Flag(TimestampDeadline))
}

func TestIndexMetadata_TodoKeywords(t *testing.T) {
	m := IndexMetadata{Todos: []TodoSet{
		{"TODO": false, "DONE": true},
		{"WAIT": false, "DONE": false},
	}}

	kw := m.TodoKeywords()
	assert.Len(t, kw, 3)
	assert.False(t, kw["TODO"])
	assert.False(t, kw["WAIT"])
	assert.False(t, kw["DONE"])
}

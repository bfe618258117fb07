package orgparser

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

// HeadingClassifier extracts the structured fields of one heading line.
type HeadingClassifier interface {
	Classify(line string, depth int) domain.Heading
}

// DefaultTodoKeywords is used when no index vocabulary is available.
var DefaultTodoKeywords = map[string]bool{"TODO": false, "DONE": true}

var (
	headingTags     = regexp.MustCompile(`(?:^|\s+)(:(?:[^\s:]+:)+)\s*$`)
	headingPriority = regexp.MustCompile(`^\[#([A-Za-z0-9])\]\s*`)
)

// Classifier is the default HeadingClassifier. It recognises
//
//	*** TODO [#A] Title text :tag1:tag2:
//
// where the todo keyword must belong to the configured vocabulary.
type Classifier struct {
	todos map[string]bool
}

// Ensure Classifier implements the interface.
var _ HeadingClassifier = (*Classifier)(nil)

// NewClassifier creates a classifier for the given todo vocabulary.
// A nil or empty vocabulary falls back to DefaultTodoKeywords.
func NewClassifier(todos map[string]bool) *Classifier {
	if len(todos) == 0 {
		todos = DefaultTodoKeywords
	}
	return &Classifier{todos: todos}
}

// Classify splits a heading line of the given depth into its fields.
func (c *Classifier) Classify(line string, depth int) domain.Heading {
	var h domain.Heading
	if depth > len(line) {
		return h
	}
	rest := strings.TrimSpace(line[depth:])

	if m := headingTags.FindStringSubmatchIndex(rest); m != nil {
		h.Tags = strings.Trim(rest[m[2]:m[3]], ":")
		rest = strings.TrimSpace(rest[:m[0]])
	}

	if word, tail, _ := strings.Cut(rest, " "); word != "" {
		if _, ok := c.todos[word]; ok {
			h.Todo = word
			rest = strings.TrimSpace(tail)
		}
	}

	if m := headingPriority.FindStringSubmatch(rest); m != nil {
		h.Priority = m[1]
		rest = rest[len(m[0]):]
	}

	h.Title = strings.TrimSpace(rest)
	return h
}

// IsDone reports whether keyword is a done state in the vocabulary.
func (c *Classifier) IsDone(keyword string) bool {
	return c.todos[keyword]
}

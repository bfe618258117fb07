package orgparser

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

var (
	lineBreaks          = regexp.MustCompile(`[\r\n]+`)
	indexFileLink       = regexp.MustCompile(`\[file:(.*?)\]\[(.*?)\]\]`)
	todoDirective       = regexp.MustCompile(`^#\+TODO:([^|]+)(\| (.*))*`)
	prioritiesDirective = regexp.MustCompile(`(?m)^#\+ALLPRIORITIES:(.+)$`)
	tagsDirective       = regexp.MustCompile(`(?m)^#\+TAGS:(.+)$`)
	tagBraces           = regexp.MustCompile(`[{}]`)
)

// ParseIndex runs every index scan over the text of an index document.
func ParseIndex(text string) *domain.IndexMetadata {
	return &domain.IndexMetadata{
		Files:      ParseFileList(text),
		Todos:      ParseTodoVocabulary(text),
		Priorities: ParsePriorities(text),
		Tags:       ParseTagVocabulary(text),
	}
}

// ParseChecksums reads "<checksum>  <filename>" lines into a
// filename -> checksum map. Later lines win on duplicate names.
func ParseChecksums(text string) map[string]string {
	checksums := make(map[string]string)
	for _, line := range lineBreaks.Split(text, -1) {
		if line == "" {
			continue
		}
		sum, name, ok := strings.Cut(line, "  ")
		if !ok {
			continue
		}
		checksums[name] = sum
	}
	return checksums
}

// ParseFileList collects [file:name][alias]] links into a name -> alias map.
func ParseFileList(text string) map[string]string {
	files := make(map[string]string)
	for _, m := range indexFileLink.FindAllStringSubmatch(text, -1) {
		files[m[1]] = m[2]
	}
	return files
}

// ParseTodoVocabulary reads every #+TODO: line. Keywords after '|' are done
// states; without a '|' the last keyword is taken as the done state.
func ParseTodoVocabulary(text string) []domain.TodoSet {
	var sets []domain.TodoSet
	for _, line := range strings.Split(text, "\n") {
		m := todoDirective.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}

		set := make(domain.TodoSet)
		done := false
		last := ""
		for _, group := range m[1:] {
			if strings.TrimSpace(group) == "" {
				continue
			}
			if strings.Contains(group, "|") {
				done = true
				continue
			}
			for _, kw := range strings.Fields(group) {
				last = kw
				set[kw] = done
			}
		}
		if !done && last != "" {
			set[last] = true
		}
		sets = append(sets, set)
	}
	return sets
}

// ParsePriorities returns the values of the first #+ALLPRIORITIES: line.
func ParsePriorities(text string) []string {
	m := prioritiesDirective.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}
	return fields(m[1])
}

// ParseTagVocabulary returns the tags of the first #+TAGS: line with any
// group braces removed.
func ParseTagVocabulary(text string) []string {
	m := tagsDirective.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}
	return fields(tagBraces.ReplaceAllString(m[1], ""))
}

func fields(s string) []string {
	f := strings.Fields(s)
	if f == nil {
		return []string{}
	}
	return f
}

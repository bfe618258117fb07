package orgparser

import (
	"regexp"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

var timestampPatterns = []struct {
	kind    domain.TimestampKind
	pattern *regexp.Regexp
}{
	{domain.TimestampScheduled, regexp.MustCompile(`SCHEDULED:\s*<([^>]+)>`)},
	{domain.TimestampDeadline, regexp.MustCompile(`DEADLINE:\s*<([^>]+)>`)},
}

// ScanTimestamps reports which scheduling markers occur in text.
// The first match of each kind wins; its date text is kept as-is.
func ScanTimestamps(text string) domain.TimestampRecord {
	record := make(domain.TimestampRecord, len(timestampPatterns))
	for _, tp := range timestampPatterns {
		if m := tp.pattern.FindStringSubmatch(text); m != nil {
			record[tp.kind] = m[1]
		}
	}
	return record
}

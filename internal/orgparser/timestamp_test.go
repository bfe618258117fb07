package orgparser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

func TestScanTimestamps(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected domain.TimestampRecord
	}{
		{
			name:     "None",
			text:     "just notes\n",
			expected: domain.TimestampRecord{},
		},
		{
			name:     "Scheduled",
			text:     "SCHEDULED: <2024-01-15 Mon>\n",
			expected: domain.TimestampRecord{domain.TimestampScheduled: "2024-01-15 Mon"},
		},
		{
			name: "Both on one line",
			text: "DEADLINE: <2024-02-01 Thu> SCHEDULED: <2024-01-20 Sat 10:00>\n",
			expected: domain.TimestampRecord{
				domain.TimestampScheduled: "2024-01-20 Sat 10:00",
				domain.TimestampDeadline:  "2024-02-01 Thu",
			},
		},
		{
			name:     "Inactive timestamp ignored",
			text:     "SCHEDULED: [2024-01-15 Mon]\n",
			expected: domain.TimestampRecord{},
		},
		{
			name:     "Later lines of the buffer",
			text:     "first\nsecond\n  DEADLINE: <2024-03-03>\n",
			expected: domain.TimestampRecord{domain.TimestampDeadline: "2024-03-03"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScanTimestamps(tt.text))
		})
	}
}

func TestScanTimestamps_Idempotent(t *testing.T) {
	text := "SCHEDULED: <2024-01-15 Mon>\n"
	assert.Equal(t, ScanTimestamps(text), ScanTimestamps(text))
}

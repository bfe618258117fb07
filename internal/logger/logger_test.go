package logger

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	withBuffer(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name     string
		log      func(string, ...any)
		expected string
	}{
		{name: "Debug", log: Debug, expected: "[DEBUG] parsed 3 nodes\n"},
		{name: "Info", log: Info, expected: "[INFO] parsed 3 nodes\n"},
		{name: "Warn", log: Warn, expected: "[WARN] parsed 3 nodes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := withBuffer(t, true)
			tt.log("parsed %d nodes", 3)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := withBuffer(t, false)

	Debug("hidden")
	Info("hidden")
	Section("hidden")
	assert.Empty(t, buf.String())

	Warn("read fault in %s", "todo.org")
	assert.Equal(t, "[WARN] read fault in todo.org\n", buf.String())
}

func TestFormatVerbsInArgsAreNotExpanded(t *testing.T) {
	buf := withBuffer(t, true)

	Info("title %q", "100%d done")

	assert.Equal(t, "[INFO] title \"100%d done\"\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := withBuffer(t, true)
	Section("Parse todo.org")
	assert.Equal(t, "\n=== Parse todo.org ===\n", buf.String())
}

func TestTimed(t *testing.T) {
	buf := withBuffer(t, true)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}
	t.Cleanup(func() { now = time.Now })

	done := Timed("sync /d")
	done()

	assert.Equal(t, "[DEBUG] sync /d took 1.5s\n", buf.String())
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}

package status

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/keymap"
)

func TestNewBar_Defaults(t *testing.T) {
	bar := NewBar(nil)

	assert.Equal(t, StateReady, bar.State())
	assert.Empty(t, bar.Message())
	assert.Contains(t, bar.View(), "Ready")
}

func TestBar_States(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		message  string
		contains string
	}{
		{name: "loading", state: StateLoading, contains: "Loading..."},
		{name: "error with message", state: StateError, message: "boom", contains: "Error: boom"},
		{name: "error without message", state: StateError, contains: "Error"},
		{name: "ready with message", state: StateReady, message: "synced", contains: "synced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil)
			bar.SetWidth(120)
			bar.SetState(tt.state, tt.message)

			assert.Equal(t, tt.state, bar.State())
			assert.Contains(t, bar.View(), tt.contains)
		})
	}
}

func TestBar_Bindings(t *testing.T) {
	bar := NewBar(nil)
	bar.SetWidth(120)
	bar.SetBindings(keymap.DefaultKeyMap().FilesHelp())

	out := bar.View()

	assert.Contains(t, out, "enter open")
	assert.Contains(t, out, "q quit")
}

func TestBar_NarrowWidthTruncatesHints(t *testing.T) {
	bar := NewBar(nil)
	bar.SetWidth(30)
	bar.SetBindings(keymap.DefaultKeyMap().OutlineHelp())

	out := bar.View()

	assert.Contains(t, out, "Ready")
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "q quit")
}

func TestBar_DisabledBindingsHidden(t *testing.T) {
	bar := NewBar(nil)
	bar.SetWidth(120)
	b := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"))
	b.SetEnabled(false)
	bar.SetBindings([]key.Binding{b, key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "shown"))})

	out := bar.View()

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "y shown")
}

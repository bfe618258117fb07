// Package files provides the parsed file list view for the TUI.
package files

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

// View is the file list view.
type View struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	outline driving.OutlineService
	ctx     context.Context

	files    []domain.OrgFile
	selected int
	height   int
	loading  bool
	err      error
}

// NewView creates a new file list view.
func NewView(s *styles.Styles, km *keymap.KeyMap, outline driving.OutlineService) *View {
	return &View{
		styles:  s,
		keys:    km,
		outline: outline,
		ctx:     context.Background(),
		files:   []domain.OrgFile{},
	}
}

// Load returns a command that lists the parsed files.
func (v *View) Load() tea.Cmd {
	v.loading = true
	return func() tea.Msg {
		files, err := v.outline.ListFiles(v.ctx)
		return messages.FilesLoaded{Files: files, Err: err}
	}
}

// SetContext sets the context used for store reads.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Update handles messages for the file list.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.height = msg.Height
	case messages.FilesLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			v.files = msg.Files
			if v.selected >= len(v.files) {
				v.selected = 0
			}
		}
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keys.Down):
		if v.selected < len(v.files)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keys.Select):
		if len(v.files) == 0 {
			return v, nil
		}
		name := v.files[v.selected].Name
		return v, func() tea.Msg { return messages.FileSelected{Name: name} }
	case key.Matches(msg, v.keys.Reload):
		return v, v.Load()
	}
	return v, nil
}

// Selected returns the index of the highlighted file.
func (v *View) Selected() int {
	return v.selected
}

// View renders the file list.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Files (%d)", len(v.files))))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading files..."))
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	case len(v.files) == 0:
		b.WriteString(v.styles.Muted.Render("No files parsed yet. Run orgsync sync <dir>."))
	default:
		for i, f := range v.files {
			line := fmt.Sprintf("%-30s %s", f.Name, f.DisplayName())
			if i == v.selected {
				b.WriteString(v.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(v.styles.Normal.Render("  " + line))
			}
			b.WriteByte('\n')
		}
	}

	return b.String()
}

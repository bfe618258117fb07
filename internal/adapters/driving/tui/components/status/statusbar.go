// Package status renders the one-line bar under every view.
package status

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/styles"
)

// State is what the left side of the bar reports.
type State string

const (
	StateReady   State = "ready"
	StateLoading State = "loading"
	StateError   State = "error"
)

// Bar shows the app state on the left and key hints on the right. Hints
// that do not fit are cut with an ellipsis.
type Bar struct {
	styles   *styles.Styles
	help     help.Model
	bindings []key.Binding
	state    State
	message  string
	width    int
}

// NewBar returns a ready bar, 80 columns wide until SetWidth is called.
func NewBar(s *styles.Styles) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}

	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = s.Help.Bold(true)
	h.Styles.ShortDesc = s.Help
	h.Styles.ShortSeparator = s.Help
	h.Styles.Ellipsis = s.Help

	return &Bar{styles: s, help: h, state: StateReady, width: 80}
}

func (b *Bar) View() string {
	left := b.status()

	b.help.Width = max(b.width-lipgloss.Width(left)-3, 0)
	right := b.help.ShortHelpView(b.bindings)

	gap := max(b.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) status() string {
	switch {
	case b.state == StateLoading:
		return b.styles.Muted.Render("Loading...")
	case b.state == StateError && b.message != "":
		return b.styles.Error.Render("Error: " + b.message)
	case b.state == StateError:
		return b.styles.Error.Render("Error")
	case b.message != "":
		return b.styles.Normal.Render(b.message)
	}
	return b.styles.Muted.Render("Ready")
}

// SetState replaces the state and its message.
func (b *Bar) SetState(state State, message string) {
	b.state = state
	b.message = message
}

func (b *Bar) State() State { return b.state }

func (b *Bar) Message() string { return b.message }

// SetBindings sets the hints. Disabled bindings are not shown.
func (b *Bar) SetBindings(bindings []key.Binding) {
	b.bindings = bindings
}

func (b *Bar) SetWidth(width int) {
	b.width = width
}

// Package styles holds the outline browser's palettes and lipgloss styles.
package styles

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette. Each field names the role a colour plays in an
// outline rather than the colour itself.
type Theme struct {
	Accent   lipgloss.Color // titles, selection background
	Tag      lipgloss.Color
	Text     lipgloss.Color
	Dim      lipgloss.Color // payload lines, inherited tags, hints
	Done     lipgloss.Color
	Priority lipgloss.Color
	Open     lipgloss.Color // open todo keywords and errors
	Bar      lipgloss.Color // status bar background
}

var themes = map[string]*Theme{
	"dark": {
		Accent:   "#7C3AED",
		Tag:      "#06B6D4",
		Text:     "#CDD6F4",
		Dim:      "#6C7086",
		Done:     "#A6E3A1",
		Priority: "#F9E2AF",
		Open:     "#F38BA8",
		Bar:      "#181825",
	},
	"light": {
		Accent:   "#5B21B6",
		Tag:      "#0E7490",
		Text:     "#1E1E2E",
		Dim:      "#7C7F93",
		Done:     "#40A02B",
		Priority: "#DF8E1D",
		Open:     "#D20F39",
		Bar:      "#E6E9EF",
	},
}

// DefaultThemeName is used when no theme is requested.
const DefaultThemeName = "dark"

// ThemeNames lists the built-in palettes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a copy of a built-in palette. "" selects the default.
func ThemeByName(name string) (*Theme, error) {
	if name == "" {
		name = DefaultThemeName
	}
	t, ok := themes[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (have %v)", name, ThemeNames())
	}
	cp := *t
	return &cp, nil
}

// DefaultTheme returns the dark palette.
func DefaultTheme() *Theme {
	t, _ := ThemeByName(DefaultThemeName)
	return t
}

// Styles are the rendered roles used by the views.
type Styles struct {
	theme *Theme

	Title     lipgloss.Style
	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Todo      lipgloss.Style
	Done      lipgloss.Style
	Priority  lipgloss.Style
	Tag       lipgloss.Style
	Inherited lipgloss.Style
	StatusBar lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles builds styles for theme, or the default theme when nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	return &Styles{
		theme:     theme,
		Title:     fg(theme.Accent).Bold(true),
		Normal:    fg(theme.Text),
		Muted:     fg(theme.Dim),
		Selected:  fg(theme.Text).Background(theme.Accent).Bold(true),
		Error:     fg(theme.Open),
		Todo:      fg(theme.Open).Bold(true),
		Done:      fg(theme.Done),
		Priority:  fg(theme.Priority),
		Tag:       fg(theme.Tag),
		Inherited: fg(theme.Dim).Italic(true),
		StatusBar: fg(theme.Dim).Background(theme.Bar).Padding(0, 1),
		Help:      fg(theme.Dim),
	}
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Theme returns the palette the styles were built from.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the file list.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select opens a file.
	Select key.Binding

	// Toggle folds or unfolds the selected heading.
	Toggle key.Binding

	// ExpandAll unfolds every heading.
	ExpandAll key.Binding

	// CollapseAll folds every heading to the top level.
	CollapseAll key.Binding

	// Payload shows or hides payload text.
	Payload key.Binding

	// Reload reads the data again from the store.
	Reload key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", " ", "enter"),
			key.WithHelp("tab", "fold"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "collapse all"),
		),
		Payload: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "payload"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
	}
}

// FilesHelp returns keybindings for the file list.
func (k *KeyMap) FilesHelp() []key.Binding {
	return []key.Binding{k.Select, k.Reload, k.Quit}
}

// OutlineHelp returns keybindings for the outline view.
func (k *KeyMap) OutlineHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ExpandAll, k.CollapseAll, k.Payload, k.Back, k.Quit}
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/views/files"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/views/outline"
)

// App is the outline browser following the Elm architecture.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	filesView   *files.View
	outlineView *outline.View
	statusBar   *status.Bar

	currentView messages.ViewType

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// Option adjusts an App at construction.
type Option func(*options)

type options struct {
	theme *styles.Theme
}

// WithTheme renders the app with the given palette.
func WithTheme(t *styles.Theme) Option {
	return func(o *options) { o.theme = t }
}

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports, opts ...Option) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	s := styles.NewStyles(o.theme)
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keys:        km,
		filesView:   files.NewView(s, km, ports.Outline),
		outlineView: outline.NewView(s, km, ports.Outline),
		statusBar:   status.NewBar(s),
		currentView: messages.ViewFiles,
	}
	a.statusBar.SetBindings(km.FilesHelp())
	return a, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.filesView.SetContext(ctx)
	a.outlineView.SetContext(ctx)
	return a
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("orgsync"),
		a.filesView.Load(),
		a.loadVocabulary(),
	)
}

func (a *App) loadVocabulary() tea.Cmd {
	if a.ports.Index == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		meta, err := a.ports.Index.Get(ctx)
		return messages.VocabularyLoaded{Index: meta, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.statusBar.SetWidth(msg.Width)
		a.filesView, _ = a.filesView.Update(msg)
		a.outlineView, _ = a.outlineView.Update(msg)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		a.statusBar.SetState(status.StateReady, "")
		switch a.currentView {
		case messages.ViewFiles:
			a.filesView, cmd = a.filesView.Update(msg)
		case messages.ViewOutline:
			a.outlineView, cmd = a.outlineView.Update(msg)
		}
		return a, cmd

	case messages.FilesLoaded:
		a.filesView, cmd = a.filesView.Update(msg)
		a.reportErr(msg.Err)
		return a, cmd

	case messages.FileSelected:
		a.switchTo(messages.ViewOutline)
		a.statusBar.SetState(status.StateLoading, "")
		return a, a.outlineView.Open(msg.Name)

	case messages.OutlineLoaded:
		a.outlineView, cmd = a.outlineView.Update(msg)
		a.statusBar.SetState(status.StateReady, "")
		a.reportErr(msg.Err)
		return a, cmd

	case messages.VocabularyLoaded:
		if msg.Err == nil && msg.Index != nil {
			done := make(map[string]bool)
			for kw, isDone := range msg.Index.TodoKeywords() {
				if isDone {
					done[kw] = true
				}
			}
			a.outlineView.SetDoneKeywords(done)
		}
		return a, nil

	case messages.ViewChanged:
		a.switchTo(msg.View)
		if msg.View == messages.ViewFiles {
			return a, a.filesView.Load()
		}
		return a, nil
	}

	return a, nil
}

func (a *App) switchTo(view messages.ViewType) {
	a.currentView = view
	switch view {
	case messages.ViewFiles:
		a.statusBar.SetBindings(a.keys.FilesHelp())
	case messages.ViewOutline:
		a.statusBar.SetBindings(a.keys.OutlineHelp())
	}
}

func (a *App) reportErr(err error) {
	if err != nil {
		a.statusBar.SetState(status.StateError, err.Error())
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewOutline:
		body = a.outlineView.View()
	default:
		body = a.filesView.View()
	}

	lines := strings.Count(body, "\n") + 1
	if pad := a.height - lines - 1; pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	return body + "\n" + a.statusBar.View()
}

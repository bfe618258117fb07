// Package outline provides the foldable node tree view for the TUI.
package outline

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

// reservedLines is the space taken by the title and status bar.
const reservedLines = 4

// row is one visible heading.
type row struct {
	node  *driving.OutlineNode
	level int
}

// View is the outline tree view.
type View struct {
	styles  *styles.Styles
	keys    *keymap.KeyMap
	outline driving.OutlineService
	ctx     context.Context

	name        string
	tree        *driving.Outline
	folded      map[int64]bool
	rows        []row
	selected    int
	offset      int
	height      int
	showPayload bool
	done        map[string]bool
	loading     bool
	err         error
}

// NewView creates a new outline view.
func NewView(s *styles.Styles, km *keymap.KeyMap, outline driving.OutlineService) *View {
	return &View{
		styles:  s,
		keys:    km,
		outline: outline,
		ctx:     context.Background(),
		folded:  make(map[int64]bool),
		done:    map[string]bool{"DONE": true},
	}
}

// SetDoneKeywords replaces the set of todo keywords rendered as done.
func (v *View) SetDoneKeywords(done map[string]bool) {
	if len(done) > 0 {
		v.done = done
	}
}

// Open returns a command that loads the named file.
func (v *View) Open(name string) tea.Cmd {
	v.name = name
	v.loading = true
	return func() tea.Msg {
		tree, err := v.outline.Get(v.ctx, name)
		return messages.OutlineLoaded{Outline: tree, Err: err}
	}
}

// SetContext sets the context used for store reads.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Update handles messages for the outline view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.height = msg.Height
		v.adjustScroll()
	case messages.OutlineLoaded:
		v.loading = false
		v.err = msg.Err
		if msg.Err == nil {
			if v.tree == nil || v.tree.File.Name != msg.Outline.File.Name {
				v.folded = make(map[int64]bool)
				v.selected = 0
				v.offset = 0
			}
			v.tree = msg.Outline
			v.rebuild()
		}
	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewFiles} }
	case key.Matches(msg, v.keys.Up):
		if v.selected > 0 {
			v.selected--
		}
	case key.Matches(msg, v.keys.Down):
		if v.selected < len(v.rows)-1 {
			v.selected++
		}
	case key.Matches(msg, v.keys.Toggle):
		if r, ok := v.current(); ok && len(r.node.Children) > 0 {
			v.folded[r.node.Node.ID] = !v.folded[r.node.Node.ID]
			v.rebuild()
		}
	case key.Matches(msg, v.keys.ExpandAll):
		v.folded = make(map[int64]bool)
		v.rebuild()
	case key.Matches(msg, v.keys.CollapseAll):
		v.collapseAll()
	case key.Matches(msg, v.keys.Payload):
		v.showPayload = !v.showPayload
	case key.Matches(msg, v.keys.Reload):
		if v.name != "" {
			return v, v.Open(v.name)
		}
	}
	v.adjustScroll()
	return v, nil
}

func (v *View) current() (row, bool) {
	if v.selected < 0 || v.selected >= len(v.rows) {
		return row{}, false
	}
	return v.rows[v.selected], true
}

// collapseAll folds every heading with children so only top-level
// headings remain visible.
func (v *View) collapseAll() {
	if v.tree == nil {
		return
	}
	v.tree.Root.Walk(func(n *driving.OutlineNode, level int) {
		if level > 0 && len(n.Children) > 0 {
			v.folded[n.Node.ID] = true
		}
	})
	v.rebuild()
}

// rebuild recomputes the visible rows, keeping the selection on the same
// node where possible.
func (v *View) rebuild() {
	var selectedID int64
	if r, ok := v.current(); ok {
		selectedID = r.node.Node.ID
	}

	v.rows = v.rows[:0]
	if v.tree != nil {
		for _, c := range v.tree.Root.Children {
			v.appendRows(c, 0)
		}
	}

	v.selected = 0
	for i, r := range v.rows {
		if r.node.Node.ID == selectedID {
			v.selected = i
			break
		}
	}
	v.adjustScroll()
}

func (v *View) appendRows(n *driving.OutlineNode, level int) {
	v.rows = append(v.rows, row{node: n, level: level})
	if v.folded[n.Node.ID] {
		return
	}
	for _, c := range n.Children {
		v.appendRows(c, level+1)
	}
}

func (v *View) visibleRows() int {
	if v.height <= reservedLines {
		return len(v.rows)
	}
	return v.height - reservedLines
}

func (v *View) adjustScroll() {
	visible := v.visibleRows()
	if v.selected < v.offset {
		v.offset = v.selected
	} else if v.selected >= v.offset+visible {
		v.offset = v.selected - visible + 1
	}
}

// Rows returns the titles of the visible headings.
func (v *View) Rows() []string {
	titles := make([]string, len(v.rows))
	for i, r := range v.rows {
		titles[i] = r.node.Node.Title
	}
	return titles
}

// Selected returns the index of the highlighted row.
func (v *View) Selected() int {
	return v.selected
}

// ShowPayload reports whether payload text is shown.
func (v *View) ShowPayload() bool {
	return v.showPayload
}

// View renders the outline.
func (v *View) View() string {
	var b strings.Builder

	title := v.name
	if v.tree != nil {
		title = v.tree.File.DisplayName()
	}
	b.WriteString(v.styles.Title.Render(title))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading outline..."))
		return b.String()
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		return b.String()
	case len(v.rows) == 0:
		b.WriteString(v.styles.Muted.Render("No headings."))
		return b.String()
	}

	end := v.offset + v.visibleRows()
	if end > len(v.rows) {
		end = len(v.rows)
	}
	for i := v.offset; i < end; i++ {
		b.WriteString(v.renderRow(v.rows[i], i == v.selected))
		b.WriteByte('\n')
	}

	return b.String()
}

func (v *View) renderRow(r row, selected bool) string {
	n := r.node
	marker := "  "
	if len(n.Children) > 0 {
		marker = "▾ "
		if v.folded[n.Node.ID] {
			marker = "▸ "
		}
	}

	parts := []string{}
	if n.Node.Todo != "" {
		style := v.styles.Todo
		if v.done[n.Node.Todo] {
			style = v.styles.Done
		}
		parts = append(parts, style.Render(n.Node.Todo))
	}
	if n.Node.Priority != "" {
		parts = append(parts, v.styles.Priority.Render("[#"+n.Node.Priority+"]"))
	}
	title := n.Node.Title
	if selected {
		title = v.styles.Selected.Render(title)
	}
	parts = append(parts, title)
	if n.Node.Tags != "" {
		parts = append(parts, v.styles.Tag.Render(":"+n.Node.Tags+":"))
	}
	if n.Node.InheritedTags != "" {
		parts = append(parts, v.styles.Inherited.Render("(:"+n.Node.InheritedTags+":)"))
	}
	for _, kind := range domain.TimestampKinds {
		if date, ok := n.Timestamps[kind]; ok {
			parts = append(parts, v.styles.Priority.Render(fmt.Sprintf("%s <%s>", strings.ToUpper(string(kind)), date)))
		}
	}

	indent := strings.Repeat("  ", r.level)
	line := indent + marker + strings.Join(parts, " ")

	if v.showPayload && n.Payload != "" {
		pad := indent + "    "
		for _, p := range strings.Split(strings.TrimRight(n.Payload, "\n"), "\n") {
			line += "\n" + pad + v.styles.Muted.Render(p)
		}
	}
	return line
}

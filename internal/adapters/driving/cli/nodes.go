package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/orgsync/internal/core/domain"
	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes <file>",
	Short: "Print the node tree of a parsed file",
	Long: `Rebuilds the node tree of a parsed file from the database and prints it
with todo state, priority, own and inherited tags, and scheduling markers.`,
	Args: cobra.ExactArgs(1),
	RunE: runNodes,
}

var nodesPayload bool

func init() {
	nodesCmd.Flags().BoolVarP(&nodesPayload, "payload", "p", false, "Include payload text")
	rootCmd.AddCommand(nodesCmd)
}

// treeStyle holds the renderers for one output mode.
type treeStyle struct {
	todo      lipgloss.Style
	done      lipgloss.Style
	tags      lipgloss.Style
	inherited lipgloss.Style
	muted     lipgloss.Style
	indent    string
	branch    string
}

var plainTree = treeStyle{
	todo:      lipgloss.NewStyle(),
	done:      lipgloss.NewStyle(),
	tags:      lipgloss.NewStyle(),
	inherited: lipgloss.NewStyle(),
	muted:     lipgloss.NewStyle(),
	indent:    "  ",
	branch:    "- ",
}

var colourTree = treeStyle{
	todo:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	done:      lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
	tags:      lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
	inherited: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true),
	muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
	indent:    "│ ",
	branch:    "├ ",
}

// styleFor picks the colour tree only when w is a terminal.
func styleFor(w io.Writer) treeStyle {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return colourTree
	}
	return plainTree
}

func runNodes(cmd *cobra.Command, args []string) error {
	if outlineService == nil {
		return fmt.Errorf("nodes: %w", errNotConfigured)
	}

	ctx := context.Background()
	outline, err := outlineService.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	r := &treeRenderer{
		style:   styleFor(out),
		done:    doneKeywords(ctx),
		payload: nodesPayload,
	}
	r.render(out, outline)
	return nil
}

// treeRenderer prints an outline one node per line.
type treeRenderer struct {
	style   treeStyle
	done    map[string]bool
	payload bool
}

func (r *treeRenderer) render(w io.Writer, outline *driving.Outline) {
	outline.Root.Walk(func(n *driving.OutlineNode, level int) {
		prefix := ""
		if level > 0 {
			prefix = strings.Repeat(r.style.indent, level-1) + r.style.branch
		}
		fmt.Fprintln(w, prefix+r.heading(n))

		if r.payload && n.Payload != "" {
			pad := strings.Repeat(r.style.indent, level)
			for _, line := range strings.Split(strings.TrimRight(n.Payload, "\n"), "\n") {
				fmt.Fprintln(w, pad+r.style.muted.Render(line))
			}
		}
	})
}

func (r *treeRenderer) heading(n *driving.OutlineNode) string {
	var parts []string

	if n.Node.Todo != "" {
		s := r.style.todo
		if r.done[n.Node.Todo] {
			s = r.style.done
		}
		parts = append(parts, s.Render(n.Node.Todo))
	}
	if n.Node.Priority != "" {
		parts = append(parts, "[#"+n.Node.Priority+"]")
	}
	parts = append(parts, n.Node.Title)

	if n.Node.Tags != "" {
		parts = append(parts, r.style.tags.Render(":"+n.Node.Tags+":"))
	}
	if n.Node.InheritedTags != "" {
		parts = append(parts, r.style.inherited.Render("(:"+n.Node.InheritedTags+":)"))
	}
	for _, kind := range domain.TimestampKinds {
		if date, ok := n.Timestamps[kind]; ok {
			parts = append(parts, r.style.muted.Render(strings.ToUpper(string(kind))+": <"+date+">"))
		}
	}

	return strings.Join(parts, " ")
}

// doneKeywords returns the stored done states, or DONE alone when no
// vocabulary has been loaded.
func doneKeywords(ctx context.Context) map[string]bool {
	fallback := map[string]bool{"DONE": true}
	if indexService == nil {
		return fallback
	}
	meta, err := indexService.Get(ctx)
	if err != nil {
		return fallback
	}
	todos := meta.TodoKeywords()
	if len(todos) == 0 {
		return fallback
	}
	return todos
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/tui/styles"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse parsed outlines interactively",
	Long: `Open a terminal browser over the parsed files.

Pick a file with enter, then fold and unfold headings with tab, expand or
collapse everything with o and c, and show payload text with p.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

var tuiTheme string

func init() {
	tuiCmd.Flags().StringVar(&tuiTheme, "theme", styles.DefaultThemeName,
		"Colour theme ("+strings.Join(styles.ThemeNames(), ", ")+")")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	theme, err := styles.ThemeByName(tuiTheme)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(&tui.Ports{
		Outline: outlineService,
		Index:   indexService,
	}, tui.WithTheme(theme))
	if err != nil {
		return err
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

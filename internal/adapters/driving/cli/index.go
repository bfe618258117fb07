package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

var indexCmd = &cobra.Command{
	Use:   "index [index.org]",
	Short: "Load or show the index vocabulary",
	Long: `With a path, parses the index document and stores its file list, todo
keywords, priorities and tags. Without one, prints the stored vocabulary.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return fmt.Errorf("index: %w", errNotConfigured)
	}

	ctx := context.Background()
	var (
		meta *domain.IndexMetadata
		err  error
	)
	if len(args) == 1 {
		text, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return readErr
		}
		meta, err = indexService.Sync(ctx, string(text))
	} else {
		meta, err = indexService.Get(ctx)
	}
	if err != nil {
		return err
	}

	printIndex(cmd, meta)
	return nil
}

func printIndex(cmd *cobra.Command, meta *domain.IndexMetadata) {
	names := make([]string, 0, len(meta.Files))
	for name := range meta.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	cmd.Printf("Files (%d):\n", len(names))
	for _, name := range names {
		cmd.Printf("  %s  %s\n", name, meta.Files[name])
	}

	cmd.Println("Todo keywords:")
	for _, set := range meta.Todos {
		var open, done []string
		for kw, isDone := range set {
			if isDone {
				done = append(done, kw)
			} else {
				open = append(open, kw)
			}
		}
		sort.Strings(open)
		sort.Strings(done)
		cmd.Printf("  %s | %s\n", strings.Join(open, " "), strings.Join(done, " "))
	}

	cmd.Printf("Priorities: %s\n", strings.Join(meta.Priorities, " "))
	cmd.Printf("Tags: %s\n", strings.Join(meta.Tags, " "))
}

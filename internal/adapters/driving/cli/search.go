package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

var (
	searchLimit  int
	searchOffset int
	searchJSON   bool
	searchTodo   string
	searchTag    string
	searchFiles  []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search headings across parsed files",
	Long: `Matches the query against heading titles and payload text. Title hits
rank above payload hits. With --todo or --tag the query may be omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "skip this many results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchTodo, "todo", "", "only headings with this todo keyword")
	searchCmd.Flags().StringVar(&searchTag, "tag", "", "only headings carrying this tag")
	searchCmd.Flags().StringSliceVarP(&searchFiles, "file", "f", nil, "restrict to these files")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return fmt.Errorf("search: %w", errNotConfigured)
	}

	if searchOffset < 0 {
		return fmt.Errorf("--offset must not be negative, got %d", searchOffset)
	}

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	opts := domain.SearchOptions{
		Limit:  searchLimit,
		Offset: searchOffset,
		Files:  searchFiles,
		Todo:   searchTodo,
		Tag:    searchTag,
	}

	results, err := searchService.Search(context.Background(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	outputSearchTable(cmd, results, searchOffset)
	return nil
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputSearchTable numbers results from offset+1 so pages continue.
func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult, offset int) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	for i := range results {
		r := &results[i]
		heading := r.Node.Title
		if r.Node.Todo != "" {
			heading = r.Node.Todo + " " + heading
		}

		cmd.Printf("  [%d] %s (%.0f)\n", offset+i+1, heading, r.Score)
		location := r.File
		if len(r.Path) > 0 {
			location += " > " + strings.Join(r.Path, " > ")
		}
		cmd.Printf("      %s\n", location)
		if len(r.Highlights) > 0 {
			cmd.Printf("      %s\n", r.Highlights[0])
		}
	}
}

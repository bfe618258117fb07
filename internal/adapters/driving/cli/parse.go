package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a single outline file",
	Long: `Parses one outline file into the node database, replacing any nodes
previously stored under the same name.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var (
	parseName     string
	parseAlias    string
	parseChecksum string
)

func init() {
	parseCmd.Flags().StringVar(&parseName, "name", "", "Stored file name (default: base name of the file)")
	parseCmd.Flags().StringVar(&parseAlias, "alias", "", "Display name for the root node")
	parseCmd.Flags().StringVar(&parseChecksum, "checksum", "", "Checksum to record with the file")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if parseService == nil {
		return fmt.Errorf("parse: %w", errNotConfigured)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	name := parseName
	if name == "" {
		name = filepath.Base(path)
	}

	result, err := parseService.Parse(context.Background(), driving.ParseRequest{
		Name:     name,
		Alias:    parseAlias,
		Checksum: parseChecksum,
	}, f)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	cmd.Printf("Parsed %s: %d nodes, %d payload lines\n", result.File.Name, result.Nodes, result.PayloadLines)
	return nil
}

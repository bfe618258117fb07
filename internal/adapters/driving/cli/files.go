package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List parsed files",
	Args:  cobra.NoArgs,
	RunE:  runFiles,
}

func init() {
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, _ []string) error {
	if outlineService == nil {
		return fmt.Errorf("files: %w", errNotConfigured)
	}

	files, err := outlineService.ListFiles(context.Background())
	if err != nil {
		return err
	}

	if len(files) == 0 {
		cmd.Println("No files parsed yet.")
		return nil
	}

	for _, f := range files {
		cmd.Printf("%-30s %-20s %-12s %s\n",
			f.Name, f.DisplayName(), shortChecksum(f.Checksum), f.ParsedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func shortChecksum(sum string) string {
	if sum == "" {
		return "-"
	}
	if len(sum) > 10 {
		return sum[:10]
	}
	return sum
}

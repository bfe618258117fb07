package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
)

var syncCmd = &cobra.Command{
	Use:   "sync [dir]",
	Short: "Synchronise a staging directory",
	Long: `Reads index.org and checksums.dat from the staging directory and reparses
every listed file whose checksum changed since the last sync.
Without a directory, the configured sync.dir is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	if syncService == nil {
		return fmt.Errorf("sync: %w", errNotConfigured)
	}

	dir, err := syncDirArg(args)
	if err != nil {
		return err
	}

	cmd.Printf("Synchronising %s...\n", dir)
	report, err := syncService.SyncDir(context.Background(), dir)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	printSyncReport(cmd, report)
	return nil
}

func syncDirArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if settingsService == nil || settingsService.SyncDir() == "" {
		return "", errors.New("no directory given and sync.dir is not set")
	}
	return settingsService.SyncDir(), nil
}

func printSyncReport(cmd *cobra.Command, report *driving.SyncReport) {
	cmd.Printf("Parsed: %d, unchanged: %d, missing: %d\n",
		len(report.Parsed), len(report.Unchanged), len(report.Missing))
	if len(report.Parsed) > 0 {
		cmd.Printf("  parsed:  %s\n", strings.Join(report.Parsed, ", "))
	}
	if len(report.Missing) > 0 {
		cmd.Printf("  missing: %s\n", strings.Join(report.Missing, ", "))
	}
}

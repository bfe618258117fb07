package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage parser settings",
	Long: `View and change parser preferences.

Excluded tags are dropped from a heading's tags before they are
inherited by its children.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsTagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage excluded tags",
	RunE:  runSettingsTagsList,
}

var settingsTagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List excluded tags",
	Args:  cobra.NoArgs,
	RunE:  runSettingsTagsList,
}

var settingsTagsAddCmd = &cobra.Command{
	Use:   "add <tag>...",
	Short: "Exclude tags from inheritance",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSettingsTagsAdd,
}

var settingsTagsRemoveCmd = &cobra.Command{
	Use:     "remove <tag>...",
	Aliases: []string{"rm"},
	Short:   "Allow tags to be inherited again",
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSettingsTagsRemove,
}

var settingsSyncDirCmd = &cobra.Command{
	Use:   "sync-dir [dir]",
	Short: "Show or set the default staging directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSettingsSyncDir,
}

var settingsSyncDirClear bool

func init() {
	settingsSyncDirCmd.Flags().BoolVar(&settingsSyncDirClear, "clear", false, "Forget the stored directory")
	settingsTagsCmd.AddCommand(settingsTagsListCmd)
	settingsTagsCmd.AddCommand(settingsTagsAddCmd)
	settingsTagsCmd.AddCommand(settingsTagsRemoveCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsTagsCmd)
	settingsCmd.AddCommand(settingsSyncDirCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	cmd.Printf("Config file:   %s\n", settingsService.ConfigPath())
	cmd.Printf("Sync dir:      %s\n", valueOrNone(settingsService.SyncDir()))
	cmd.Printf("Excluded tags: %s\n", valueOrNone(strings.Join(settingsService.ExcludedTags(), " ")))
	cmd.Printf("Stored keys:   %s\n", valueOrNone(strings.Join(settingsService.ConfigKeys(), ", ")))
	return nil
}

func runSettingsTagsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	tags := settingsService.ExcludedTags()
	if len(tags) == 0 {
		cmd.Println("No excluded tags.")
		return nil
	}
	for _, tag := range tags {
		cmd.Println(tag)
	}
	return nil
}

func runSettingsTagsAdd(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	for _, tag := range args {
		if err := settingsService.ExcludeTag(tag); err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				return fmt.Errorf("invalid tag %q", tag)
			}
			return err
		}
		cmd.Printf("Excluded %s\n", strings.Trim(tag, ":"))
	}
	return nil
}

func runSettingsTagsRemove(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	for _, tag := range args {
		if err := settingsService.IncludeTag(tag); err != nil {
			switch {
			case errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("tag %q is not excluded", tag)
			case errors.Is(err, domain.ErrInvalidInput):
				return fmt.Errorf("invalid tag %q", tag)
			}
			return err
		}
		cmd.Printf("Removed %s\n", strings.Trim(tag, ":"))
	}
	return nil
}

func runSettingsSyncDir(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", errNotConfigured)
	}

	if settingsSyncDirClear {
		if len(args) > 0 {
			return errors.New("--clear takes no directory")
		}
		if err := settingsService.ClearSyncDir(); err != nil {
			return err
		}
		cmd.Println("Sync dir cleared")
		return nil
	}

	if len(args) == 0 {
		cmd.Println(valueOrNone(settingsService.SyncDir()))
		return nil
	}

	if err := settingsService.SetSyncDir(args[0]); err != nil {
		return err
	}
	cmd.Printf("Sync dir set to %s\n", settingsService.SyncDir())
	return nil
}

func valueOrNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

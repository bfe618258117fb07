package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/orgsync/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Re-sync a staging directory whenever it changes",
	Long: `Runs a sync, then watches the staging directory and runs it again after
files are written, created, removed or renamed. Stops on interrupt.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

var (
	watchDebounce    time.Duration
	watchMinInterval time.Duration
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond,
		"Quiet period before a change triggers a sync")
	watchCmd.Flags().DurationVar(&watchMinInterval, "min-interval", 2*time.Second,
		"Minimum time between two syncs (0 = no limit)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if syncService == nil {
		return fmt.Errorf("watch: %w", errNotConfigured)
	}

	dir, err := syncDirArg(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	return watchLoop(ctx, cmd, dir, watcher.Events, watcher.Errors, watchDebounce, syncLimiter(watchMinInterval))
}

// syncLimiter allows one sync per interval. A zero interval disables the limit.
func syncLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// watchLoop syncs once, then again after each burst of relevant events
// has been quiet for debounce. A non-nil limiter spaces the syncs out.
func watchLoop(
	ctx context.Context,
	cmd *cobra.Command,
	dir string,
	events <-chan fsnotify.Event,
	errs <-chan error,
	debounce time.Duration,
	limiter *rate.Limiter,
) error {
	runOnce := func() {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				logger.Debug("sync skipped: %v", err)
				return
			}
		}
		report, err := syncService.SyncDir(ctx, dir)
		if err != nil {
			cmd.PrintErrf("sync failed: %v\n", err)
			return
		}
		printSyncReport(cmd, report)
	}

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)
	runOnce()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !triggersSync(ev) {
				continue
			}
			logger.Debug("change: %s %s", ev.Op, ev.Name)
			if pending && !timer.Stop() {
				<-timer.C
			}
			timer.Reset(debounce)
			pending = true
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watcher: %v", err)
		case <-timer.C:
			pending = false
			runOnce()
		}
	}
}

// triggersSync skips chmod-only events and hidden or editor temp files.
func triggersSync(ev fsnotify.Event) bool {
	if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) &&
		!ev.Op.Has(fsnotify.Remove) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "#") || strings.HasSuffix(base, "~") {
		return false
	}
	return true
}

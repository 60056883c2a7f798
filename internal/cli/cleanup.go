package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vladimirbabic/vibestatus/internal/scanner"
)

// newCleanupCmd creates the 'vibestatus cleanup' command.
func newCleanupCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Reclaim stale and orphaned status files",
		Long: `Run one reclaim scan over the status directory. Files whose session is
stale or whose owning process is gone are deleted, exactly as the
running engine would do on its next cycle.

With --all, every status file is removed regardless of freshness.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if all {
				removed, err := removeAllStatusFiles(cfg.Directory, cfg.FilePrefix, cfg.FileSuffix)
				if err != nil {
					return err
				}
				fmt.Printf("Removed %d status file(s).\n", removed)
				return nil
			}

			before, err := countStatusFiles(cfg.Directory, cfg.FilePrefix, cfg.FileSuffix)
			if err != nil {
				return fmt.Errorf("failed to list status directory: %w", err)
			}

			sc := scanner.New(cfg.Directory, cfg.FilePrefix, cfg.FileSuffix, cfg.SessionTimeout(), nil)
			sessions, errCount := sc.Scan(time.Now())

			after, _ := countStatusFiles(cfg.Directory, cfg.FilePrefix, cfg.FileSuffix)
			reclaimed := before - after
			if reclaimed < 0 {
				reclaimed = 0
			}

			fmt.Printf("Reclaimed %d file(s), %d live session(s) kept.\n", reclaimed, len(sessions))
			if errCount > 0 {
				fmt.Printf("%d file(s) could not be read and were left in place.\n", errCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove every status file, live or not")

	return cmd
}

func countStatusFiles(dir, prefix, suffix string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if isStatusFile(entry.Name(), prefix, suffix) && !entry.IsDir() {
			count++
		}
	}
	return count, nil
}

func removeAllStatusFiles(dir, prefix, suffix string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list status directory: %w", err)
	}
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isStatusFile(entry.Name(), prefix, suffix) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

func isStatusFile(name, prefix, suffix string) bool {
	return strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix)
}

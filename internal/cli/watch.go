package cli

import (
	"github.com/spf13/cobra"

	"github.com/Vladimirbabic/vibestatus/internal/clients/sound"
	"github.com/Vladimirbabic/vibestatus/internal/clients/watch"
	"github.com/Vladimirbabic/vibestatus/internal/engine"
	"github.com/Vladimirbabic/vibestatus/internal/logging"
	"github.com/Vladimirbabic/vibestatus/internal/tui"
)

// newWatchCmd creates the 'vibestatus watch' command.
func newWatchCmd() *cobra.Command {
	var noSound bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Open the live status view",
		Long: `Run the status engine and show a live terminal view of all sessions.
This is also what running vibestatus with no arguments does.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(noSound)
		},
	}

	cmd.Flags().BoolVar(&noSound, "no-sound", false, "Disable notification sounds")

	return cmd
}

// runWatchCmd backs the bare root invocation.
func runWatchCmd(cmd *cobra.Command, args []string) error {
	return runWatch(false)
}

func runWatch(noSound bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := engine.Options{Settings: cfg}
	if !noSound {
		opts.Player = sound.NewExecPlayer()
	}

	// A failed watch is not fatal: the poll timer still drives cycles,
	// discovery is just less prompt.
	if watcher, err := watch.NewFSWatcher(cfg.Directory); err == nil {
		opts.Watcher = watcher
	} else {
		logging.ForComponent("cli").WithError(err).Warn("directory watch unavailable, using polling only")
	}

	eng := engine.New(opts)
	eng.Start()
	defer eng.Stop()

	return tui.Run(eng)
}

package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Vladimirbabic/vibestatus/internal/config"
	"github.com/Vladimirbabic/vibestatus/internal/logging"
)

var (
	configPath string
	statusDir  string
	verbose    bool
)

// NewRootCmd creates the root command for the vibestatus CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vibestatus",
		Short: "Live status indicator for Claude Code sessions",
		Long: `vibestatus watches the status files that Claude Code hooks write and
shows one aggregate status across all running sessions: working, idle,
needs input, or not running. It plays a notification sound when a
session stops working and needs you.

Run without arguments to open the live view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: runWatchCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/vibestatus/config.toml)")
	rootCmd.PersistentFlags().StringVar(&statusDir, "dir", "", "Status file directory (default: system temp directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newCleanupCmd())
	rootCmd.AddCommand(newInstallHooksCmd())
	rootCmd.AddCommand(newHookCmd())

	return rootCmd
}

// loadConfig resolves the effective configuration: defaults, then config
// file, then flags.
func loadConfig() (config.Config, error) {
	var cfg config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cfg, err
	}

	if statusDir != "" {
		cfg.Directory = statusDir
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Vladimirbabic/vibestatus/internal/aggregate"
	"github.com/Vladimirbabic/vibestatus/internal/format"
	"github.com/Vladimirbabic/vibestatus/internal/scanner"
	"github.com/Vladimirbabic/vibestatus/internal/store"
	"github.com/Vladimirbabic/vibestatus/internal/types"
)

// newStatusCmd creates the 'vibestatus status' command.
func newStatusCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current session status once and exit",
		Long: `Scan the status directory once and print the aggregate status plus a
line per session.

Examples:
  vibestatus status          # Aggregate plus per-session detail
  vibestatus status --quiet  # Aggregate only, e.g. for shell prompts`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			sc := scanner.New(cfg.Directory, cfg.FilePrefix, cfg.FileSuffix, cfg.SessionTimeout(), nil)
			sessions, errCount := sc.Scan(time.Now())

			agg := aggregate.Aggregate(sessions)
			if quiet {
				fmt.Println(string(agg))
				return nil
			}

			fmt.Printf("Status: %s\n", format.Aggregate(agg))
			if len(sessions) == 0 {
				fmt.Println("No active sessions.")
				return nil
			}

			st := store.New()
			st.Replace(sessions)
			fmt.Printf("\n%s %s %s\n", format.Pad("PROJECT", 24), format.Pad("STATUS", 14), "LAST SEEN")
			for _, s := range st.Sessions() {
				printSessionLine(s)
			}
			if errCount > 0 {
				fmt.Printf("\n%d file(s) could not be read this scan.\n", errCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the aggregate status word")

	return cmd
}

func printSessionLine(s types.Session) {
	fmt.Printf("%s %s %s\n",
		format.Pad(s.Project, 24),
		format.PadStyled(format.SessionStatus(s.Status), 14),
		format.Activity(s.LastSeen))
}

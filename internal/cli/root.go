package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile   string
	overrides Overrides
)

// rootCmd runs the dashboard when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sitemon",
	Short: "Watch website uptime from the terminal",
	Long: `sitemon polls a list of websites on a fixed interval and shows their
status live in the terminal.

Each site is probed with an HTTP GET in its own goroutine, so a slow or
unreachable site never holds up the others. The last results per site are
kept and drawn as a chart.

Run without arguments to open the dashboard. Use 'sitemon check' for a
single round suitable for scripts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: .sitemon.yaml, then ~/.config/sitemon/config.yaml)")
	flags.StringVar(&overrides.Interval, "interval", "", "poll period (e.g., 5s, 1m)")
	flags.StringVar(&overrides.Timeout, "timeout", "", "per-probe timeout (e.g., 3s)")
	flags.StringVar(&overrides.Tick, "tick", "", "dashboard redraw interval (e.g., 200ms)")
	flags.IntVar(&overrides.HistorySize, "history", 0, "probe results kept per site")
	flags.StringVarP(&overrides.Format, "output-fmt", "o", "", "live view format: bullet or line")
	flags.StringArrayVar(&overrides.Sites, "site", nil, "site to monitor as name=url (repeatable, replaces configured sites)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(err, os.Stdout, os.Stderr))
	}
}

// reportError writes err for the user and returns the process exit code.
// An ExitError means the command already printed its result.
func reportError(err error, stdout, stderr io.Writer) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	if MachineMode() {
		_ = WriteJSONFromError(stdout, err)
	} else {
		fmt.Fprint(stderr, err.Error())
	}
	return 1
}

package cli

import (
	"os"

	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/rileyhilliard/sitemon/internal/logger"
	"github.com/rileyhilliard/sitemon/internal/monitor"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	initForce              bool
	initNonInteractiveFlag bool
)

// monitorCmd opens the live dashboard (same as running sitemon with no subcommand)
var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Open the live uptime dashboard",
	Long: `Probe every configured site on a fixed interval and show the results live.

The Live tab lists each site with its latest status. The Chart tab draws
the selected site's recent history.

Keyboard shortcuts:
  q / Esc / Ctrl+C       Quit
  tab / right / l        Next tab
  shift+tab / left / h   Previous tab
  down/j, up/k           Select site (Chart tab)
  ?                      Toggle full help

When stdout is not a terminal, one round is probed and printed instead.

Examples:
  sitemon monitor
  sitemon monitor --interval 10s -o line
  sitemon monitor --site Docs=https://go.dev --site Blog=example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return monitorCommand(cmd)
	},
}

// checkCmd probes every site once
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe every site once and report",
	Long: `Run a single probe round against every configured site and print
the results.

Exits 0 when every site answered with a status below 400, and 1 otherwise,
so it can be used from scripts and cron jobs.

Examples:
  sitemon check
  sitemon check --json
  sitemon check --site https://example.com --timeout 1s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		prober := monitor.NewHTTPProber(logger.NewEnvLogger("[probe]"))
		defer prober.Close()

		out := cmd.OutOrStdout()
		return Check(cmd.Context(), cfg, CheckOptions{
			Out:     out,
			Prober:  prober,
			Spinner: isTerminal(out),
		})
	},
}

// validateCmd checks the config without probing anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration",
	Long: `Load the configuration (with any flag overrides applied), validate it,
and print what would be monitored.

Examples:
  sitemon validate
  sitemon validate --config ./ops/sitemon.yaml
  sitemon validate --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return validateCommand(cmd.OutOrStdout())
	},
}

// initCmd creates a new .sitemon.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sitemon.yaml configuration",
	Long: `Create a .sitemon.yaml file in the current directory.

Prompts for the poll interval, the live view format and the site list.
Without a terminal (or with --non-interactive) the defaults are written,
with any --interval, --site and other overrides applied.

Examples:
  sitemon init
  sitemon init --force
  sitemon init --non-interactive --site GitHub=https://github.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := config.DefaultConfig()
		if err := overrides.Apply(base); err != nil {
			return err
		}

		return Init(InitOptions{
			Dir:            ".",
			Base:           base,
			Overwrite:      initForce,
			NonInteractive: initNonInteractive(initNonInteractiveFlag),
			Out:            cmd.OutOrStdout(),
		})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sitemon.

Examples:
  # Bash
  sitemon completion bash > /etc/bash_completion.d/sitemon

  # Zsh
  sitemon completion zsh > "${fpath[1]}/_sitemon"

  # Fish
  sitemon completion fish > ~/.config/fish/completions/sitemon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletion(rootCmd, args[0])
	},
}

func writeCompletion(root *cobra.Command, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(os.Stdout)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return root.GenPowerShellCompletion(os.Stdout)
	default:
		return errors.New(errors.ErrExec,
			"Unknown shell: "+shell,
			"Supported shells: bash, zsh, fish, powershell")
	}
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, monitorCmd, checkCmd, validateCmd} {
		cmd.Flags().BoolVar(&machineMode, "json", false, "output JSON instead of text")
	}

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "skip prompts and write defaults")

	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}

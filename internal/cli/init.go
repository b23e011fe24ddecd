package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/rileyhilliard/sitemon/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string         // Directory to write .sitemon.yaml into
	Base           *config.Config // Starting values, defaults when nil
	Overwrite      bool           // Overwrite existing config without asking
	NonInteractive bool           // Skip prompts, write Base as-is
	Out            io.Writer
}

// Init creates a new .sitemon.yaml configuration file.
func Init(opts InitOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	cfg := opts.Base
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	configPath := filepath.Join(opts.Dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return nil
		}
	}

	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "%s Created %s with %d sites\n\n", ui.SymbolSuccess, configPath, len(cfg.Sites))
	fmt.Fprintln(opts.Out, "Next steps:")
	fmt.Fprintln(opts.Out, "  sitemon validate  - Check the configuration")
	fmt.Fprintln(opts.Out, "  sitemon check     - Probe every site once")
	fmt.Fprintln(opts.Out, "  sitemon           - Open the dashboard")

	return nil
}

// promptConfig asks for the settings people most often change and updates cfg.
func promptConfig(cfg *config.Config) error {
	interval := cfg.Interval
	format := cfg.Output.Format
	sitesText := formatSiteLines(cfg.Sites)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Poll interval").
				Description("How often every site is probed").
				Placeholder(config.DefaultInterval).
				Value(&interval).
				Validate(validateIntervalInput),
			huh.NewSelect[string]().
				Title("Live view format").
				Options(
					huh.NewOption("Bullet: ● name  address  status", config.FormatBullet),
					huh.NewOption("Line: one colored row per site", config.FormatLine),
				).
				Value(&format),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Sites").
				Description("One per line as name=url").
				Value(&sitesText).
				Validate(func(s string) error {
					_, err := parseSiteLines(s)
					return err
				}),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	sites, err := parseSiteLines(sitesText)
	if err != nil {
		return err
	}

	cfg.Interval = strings.TrimSpace(interval)
	cfg.Output.Format = format
	cfg.Sites = sites
	return nil
}

func validateIntervalInput(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 5s or 1m")
	}
	if d < config.MinInterval {
		return fmt.Errorf("the minimum is %s", config.MinInterval)
	}
	return nil
}

// formatSiteLines renders sites as name=url lines for editing.
func formatSiteLines(sites []config.Site) string {
	lines := make([]string, len(sites))
	for i, s := range sites {
		lines[i] = s.Name + "=" + s.URL
	}
	return strings.Join(lines, "\n")
}

// parseSiteLines parses name=url lines, skipping blank ones.
func parseSiteLines(text string) ([]config.Site, error) {
	sites := []config.Site{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		site, err := ParseSiteFlag(line)
		if err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, nil
}

// initNonInteractive reports whether init should skip prompts.
func initNonInteractive(flag bool) bool {
	if flag || os.Getenv("SITEMON_NON_INTERACTIVE") != "" || os.Getenv("CI") != "" {
		return true
	}
	return !isTerminal(os.Stdin)
}

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/ui"
)

// ValidateResult is the --json payload of validate.
type ValidateResult struct {
	Path        string        `json:"path,omitempty"`
	Interval    string        `json:"interval"`
	Timeout     string        `json:"timeout"`
	Tick        string        `json:"tick"`
	HistorySize int           `json:"history_size"`
	Format      string        `json:"format"`
	Sites       []config.Site `json:"sites"`
}

// validateCommand loads the config with overrides applied and reports what
// would be monitored.
func validateCommand(out io.Writer) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	result := ValidateResult{
		Path:        path,
		Interval:    cfg.PollInterval().String(),
		Timeout:     cfg.ProbeTimeout().String(),
		Tick:        cfg.TickInterval().String(),
		HistorySize: cfg.HistorySize,
		Format:      cfg.Output.Format,
		Sites:       cfg.Sites,
	}

	if machineMode {
		return WriteJSONSuccess(out, result)
	}

	writeValidateSummary(out, result)
	return nil
}

func writeValidateSummary(out io.Writer, r ValidateResult) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)

	source := r.Path
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(out, "%s Config valid %s\n\n", successStyle.Render(ui.SymbolSuccess), mutedStyle.Render("("+source+")"))

	fmt.Fprintf(out, "  interval  %s\n", r.Interval)
	fmt.Fprintf(out, "  timeout   %s\n", r.Timeout)
	fmt.Fprintf(out, "  tick      %s\n", r.Tick)
	fmt.Fprintf(out, "  history   %d\n", r.HistorySize)
	fmt.Fprintf(out, "  format    %s\n\n", r.Format)

	if len(r.Sites) == 0 {
		fmt.Fprintln(out, "No sites configured")
		return
	}

	nameWidth, addrWidth := len("NAME"), len("ADDRESS")
	rows := make([][]string, len(r.Sites))
	for i, s := range r.Sites {
		rows[i] = []string{strconv.Itoa(i + 1), s.Name, config.NormalizeURL(s.URL)}
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
		addrWidth = max(addrWidth, lipgloss.Width(rows[i][2]))
	}

	fmt.Fprintln(out, ui.RenderSimpleTable([]ui.TableColumn{
		{Title: "#", Width: 3},
		{Title: "NAME", Width: nameWidth},
		{Title: "ADDRESS", Width: addrWidth},
	}, rows))
}

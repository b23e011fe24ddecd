package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/rileyhilliard/sitemon/internal/monitor"
	"github.com/rileyhilliard/sitemon/internal/ui"
)

// CheckOptions configures a single probe round.
type CheckOptions struct {
	Out     io.Writer
	Prober  monitor.Prober
	Spinner bool // animate while probing; off for pipes and --json
}

// Check probes every configured site once and prints the results. It returns
// an ExitError(1) when any site is not up.
func Check(ctx context.Context, cfg *config.Config, opts CheckOptions) error {
	registry := monitor.NewRegistry(siteSpecs(cfg), cfg.HistorySize)
	poller := monitor.NewPoller(registry, opts.Prober, pollerConfig(cfg))

	var spinner *ui.Spinner
	if opts.Spinner && !machineMode && registry.Len() > 0 {
		spinner = ui.NewSpinner(opts.Out, fmt.Sprintf("Probing %d sites", registry.Len()))
		spinner.Start()
	}

	poller.RunRound(ctx)

	data := newSnapshotData(registry.SnapshotAll())
	allUp := data.Up == data.Total

	if spinner != nil {
		summary := fmt.Sprintf("%d/%d sites up", data.Up, data.Total)
		if allUp {
			spinner.Success(summary)
		} else {
			spinner.Fail(summary)
		}
	}

	var err error
	if machineMode {
		err = WriteJSONSuccess(opts.Out, data)
	} else {
		err = writeStatusTable(opts.Out, data.Sites)
	}
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrExec,
			"Couldn't write results",
			"Check that the output is writable")
	}

	if !allUp {
		return errors.NewExitError(1)
	}
	return nil
}

// writeStatusTable prints one line per site with its latest outcome.
func writeStatusTable(w io.Writer, snaps []monitor.SiteSnapshot) error {
	rows := make([]ui.SiteStatusRow, len(snaps))
	for i, s := range snaps {
		rows[i] = statusRow(s)
	}
	_, err := io.WriteString(w, ui.RenderSiteStatusTable(rows))
	return err
}

func statusRow(s monitor.SiteSnapshot) ui.SiteStatusRow {
	row := ui.SiteStatusRow{
		Name:    s.Name,
		Address: s.Address,
		Result:  s.Latest.String(),
	}

	switch {
	case s.Latest.IsPending():
		row.Status = ui.SiteStatusPending
	case s.Latest.IsUp():
		row.Status = ui.SiteStatusUp
	case s.Latest.IsFailure():
		row.Status = ui.SiteStatusDown
	default:
		row.Status = ui.SiteStatusError
	}
	return row
}

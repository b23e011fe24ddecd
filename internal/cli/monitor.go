package cli

import (
	"context"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/errors"
	"github.com/rileyhilliard/sitemon/internal/logger"
	"github.com/rileyhilliard/sitemon/internal/monitor"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// monitorCommand loads config and opens the dashboard. When stdout is not a
// terminal (or --json is set) it runs a single round and prints the result.
func monitorCommand(cmd *cobra.Command) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	prober := monitor.NewHTTPProber(logger.NewEnvLogger("[probe]"))
	defer prober.Close()

	out := cmd.OutOrStdout()
	if machineMode || !isTerminal(out) {
		return printRound(cmd.Context(), cfg, prober, out)
	}

	return runDashboard(cmd.Context(), cfg, prober)
}

// runDashboard starts the poller and blocks in the Bubble Tea program until
// the user quits. The poller is stopped before returning.
func runDashboard(ctx context.Context, cfg *config.Config, prober monitor.Prober) error {
	restoreLog, err := redirectLog()
	if err != nil {
		return err
	}
	defer restoreLog()

	registry := monitor.NewRegistry(siteSpecs(cfg), cfg.HistorySize)
	poller := monitor.NewPoller(registry, prober, pollerConfig(cfg))

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		poller.Run(ctx)
	}()

	model := monitor.NewModel(registry, monitor.Options{
		Format:   cfg.Output.Format,
		Tick:     cfg.TickInterval(),
		Interval: poller.Interval(),
	})
	_, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()

	cancel()
	wg.Wait()

	if runErr != nil {
		return errors.WrapWithCode(runErr, errors.ErrTerminal,
			"The dashboard stopped unexpectedly",
			"Try 'sitemon check' if this terminal can't run full-screen apps")
	}
	return nil
}

// printRound probes every site once and prints the snapshot.
func printRound(ctx context.Context, cfg *config.Config, prober monitor.Prober, out io.Writer) error {
	registry := monitor.NewRegistry(siteSpecs(cfg), cfg.HistorySize)
	monitor.NewPoller(registry, prober, pollerConfig(cfg)).RunRound(ctx)

	snaps := registry.SnapshotAll()
	if machineMode {
		return WriteJSONSuccess(out, newSnapshotData(snaps))
	}
	return writeStatusTable(out, snaps)
}

// redirectLog keeps log output off the screen while the dashboard runs.
// With SITEMON_DEBUG set it goes to the debug log file, otherwise nowhere.
// The returned func restores stderr.
func redirectLog() (func(), error) {
	restore := func() { log.SetOutput(os.Stderr) }

	if !logger.DebugEnabled() {
		log.SetOutput(io.Discard)
		return restore, nil
	}

	path := logger.LogFile()
	f, err := tea.LogToFile(path, "sitemon")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't open debug log "+path,
			"Set "+logger.LogFileEnv+" to a writable path or unset "+logger.DebugEnv)
	}

	return func() {
		f.Close()
		log.SetPrefix("")
		restore()
	}, nil
}

// isTerminal reports whether stream is an interactive terminal.
func isTerminal(stream interface{}) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

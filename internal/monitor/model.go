package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/sitemon/internal/config"
)

// DefaultTick is the redraw interval of the event loop.
const DefaultTick = 200 * time.Millisecond

// Width used before the terminal reports its size.
const defaultWidth = 80

// Options configures the dashboard Model.
type Options struct {
	Format   string        // config.FormatBullet or config.FormatLine
	Tick     time.Duration // redraw interval
	Interval time.Duration // poll period, shown in the header
}

// Model is the Bubble Tea model for the dashboard. It reads the Registry on
// every tick and never writes to it; the poller is the only writer.
type Model struct {
	registry *Registry
	state    AppState
	keys     KeyMap
	help     help.Model
	sites    []SiteSnapshot
	format   string
	tick     time.Duration
	interval time.Duration
	width    int
	height   int
}

// tickMsg signals a periodic redraw.
type tickMsg time.Time

// NewModel creates a dashboard over registry.
func NewModel(registry *Registry, opts Options) Model {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Format != config.FormatLine {
		opts.Format = config.FormatBullet
	}

	return Model{
		registry: registry,
		state:    NewAppState(registry.Len()),
		keys:     DefaultKeyMap(),
		help:     newHelpModel(),
		sites:    registry.SnapshotAll(),
		format:   opts.Format,
		tick:     opts.Tick,
		interval: opts.Interval,
		width:    defaultWidth,
	}
}

// Init starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			m.sites = m.registry.SnapshotAll()
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		m.sites = m.registry.SnapshotAll()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.state.Closing() {
		return ""
	}
	return m.renderDashboard()
}

// State returns the current selection state.
func (m Model) State() AppState {
	return m.state
}

// UpCount returns how many sites answered their latest probe with a status below 400.
func (m Model) UpCount() int {
	count := 0
	for _, s := range m.sites {
		if s.Latest.IsUp() {
			count++
		}
	}
	return count
}

// tickCmd returns a command that sends a tick after the redraw interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

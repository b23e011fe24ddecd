package monitor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	NextSite key.Binding
	PrevSite key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("→/tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("←/shift+tab", "prev tab"),
		),
		NextSite: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next site"),
		),
		PrevSite: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev site"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevSite, k.NextSite, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab},
		{k.NextSite, k.PrevSite},
		{k.Help, k.Quit},
	}
}

// HandleKeyMsg maps a key press onto an AppState command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state.Close()
		return true, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return true, nil

	case key.Matches(msg, m.keys.NextTab):
		m.state.NextTab()
		return true, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.state.PrevTab()
		return true, nil

	case key.Matches(msg, m.keys.NextSite):
		// site navigation only applies to the chart
		if m.state.Tab() == TabChart {
			m.state.NextChartSite()
		}
		return true, nil

	case key.Matches(msg, m.keys.PrevSite):
		if m.state.Tab() == TabChart {
			m.state.PrevChartSite()
		}
		return true, nil
	}

	return false, nil
}

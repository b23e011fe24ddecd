package monitor

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpKeyStyle  = lipgloss.NewStyle().Foreground(ColorTextPrimary).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(ColorTextSecondary)
	helpSepStyle  = lipgloss.NewStyle().Foreground(ColorBorder)
)

// newHelpModel returns a help footer styled to match the dashboard.
func newHelpModel() help.Model {
	h := help.New()
	h.ShortSeparator = " | "
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	h.Styles.FullSeparator = helpSepStyle
	h.Styles.Ellipsis = helpSepStyle
	return h
}

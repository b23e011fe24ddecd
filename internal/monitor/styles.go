package monitor

import (
	"net/http"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette - electric synthwave
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F") // Deep void
	ColorSurfaceBg = lipgloss.Color("#12121A") // Dark surface
	ColorBorder    = lipgloss.Color("#2A2A4A") // Glass border (purple tint)

	// Status colors - neon style
	ColorHealthy  = lipgloss.Color("#39FF14") // Neon green
	ColorWarning  = lipgloss.Color("#FFAA00") // Electric amber
	ColorCritical = lipgloss.Color("#FF0055") // Hot red-pink

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0") // Lavender gray
	ColorTextMuted     = lipgloss.Color("#6B6B8D") // Purple-gray

	ColorAccent    = lipgloss.Color("#FF2E97") // Neon pink
	ColorAccentDim = lipgloss.Color("#BF40FF") // Neon purple
)

// Status glyphs
const (
	SymbolStatus  = "●"
	SymbolPending = "○"
	SymbolCell    = "■"
	SymbolGap     = "·"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorDarkBg).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary).
				Padding(0, 1)

	BodyStyle = lipgloss.NewStyle().
			Padding(0, 1)

	ChartStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	SiteNameStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	SiteSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Underline(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// OutcomeColor returns the status color for an outcome: muted for pending,
// green for 200, amber for any other code and red for failure.
func OutcomeColor(o Outcome) lipgloss.Color {
	switch o.Kind {
	case KindSuccess:
		if o.Code == http.StatusOK {
			return ColorHealthy
		}
		return ColorWarning
	case KindFailure:
		return ColorCritical
	default:
		return ColorTextMuted
	}
}

// OutcomeStyle returns a foreground style in the outcome's status color.
func OutcomeStyle(o Outcome) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(OutcomeColor(o))
}

// OutcomeBadgeStyle renders text on a background of the outcome's status color.
func OutcomeBadgeStyle(o Outcome) lipgloss.Style {
	fg := ColorDarkBg
	if o.IsPending() {
		fg = ColorTextPrimary
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Background(OutcomeColor(o)).
		Bold(true)
}

// outcomeSeverity orders outcomes for coloring a chart column holding more than one.
func outcomeSeverity(o Outcome) int {
	switch o.Kind {
	case KindFailure:
		return 3
	case KindSuccess:
		if o.Code == http.StatusOK {
			return 1
		}
		return 2
	default:
		return 0
	}
}

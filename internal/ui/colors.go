package ui

import "github.com/charmbracelet/lipgloss"

// Semantic colors for status indication, as ANSI codes for broad terminal support.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// GradientColors are cycled by the spinner animation.
var GradientColors = []lipgloss.Color{
	"5",  // Magenta
	"13", // Bright magenta
	"6",  // Cyan
	"2",  // Green
}

package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille character rendering for high-resolution terminal graphs.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// RenderOutcomeChart renders a newest-first history as a braille chart with
// time running left to right, so the newest outcome is on the right edge.
// Each character holds 2 outcomes and 4 vertical dots per row. A 200 fills the
// column, other codes fill half of it, a failure draws a single dot on the
// baseline and a pending slot is left blank. Columns are colored by their
// worst outcome.
func RenderOutcomeChart(history []Outcome, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	totalDots := height * 4
	targetPoints := width * 2

	// Keep only what fits, dropping the oldest.
	points := history
	if len(points) > targetPoints {
		points = points[:targetPoints]
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	colWorst := make([]Outcome, width)

	// Right-align when there are fewer points than columns.
	horizOffset := targetPoints - len(points)

	for i := range points {
		// points is newest-first; x runs oldest to newest.
		outcome := points[len(points)-1-i]
		val, ok := outcome.ChartValue()
		if !ok {
			continue
		}

		x := i + horizOffset
		charCol := x / 2
		subCol := x % 2

		if outcomeSeverity(outcome) > outcomeSeverity(colWorst[charCol]) {
			colWorst[charCol] = outcome
		}

		dotHeight := clampInt(1+int(val*float64(totalDots-1)), totalDots)
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			subRow := 3 - (dot % 4)
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	lines := make([]string, 0, height)
	for _, row := range grid {
		var lineBuilder strings.Builder
		for colIdx, char := range row {
			style := lipgloss.NewStyle().Foreground(OutcomeColor(colWorst[colIdx]))
			lineBuilder.WriteString(style.Render(string(char)))
		}
		lines = append(lines, lineBuilder.String())
	}

	return strings.Join(lines, "\n")
}

// RenderHistoryStrip renders up to width outcomes newest-first as colored
// cells, with pending slots drawn as muted dots.
func RenderHistoryStrip(history []Outcome, width int) string {
	if width <= 0 || len(history) == 0 {
		return ""
	}
	if len(history) > width {
		history = history[:width]
	}

	var b strings.Builder
	for _, o := range history {
		if o.IsPending() {
			b.WriteString(MutedStyle.Render(SymbolGap))
			continue
		}
		b.WriteString(OutcomeStyle(o).Render(SymbolCell))
	}
	return b.String()
}

// Uptime returns the share of completed probes that were up, and how many
// probes completed. Pending slots are ignored.
func Uptime(history []Outcome) (ratio float64, completed int) {
	up := 0
	for _, o := range history {
		if o.IsPending() {
			continue
		}
		completed++
		if o.IsUp() {
			up++
		}
	}
	if completed == 0 {
		return 0, 0
	}
	return float64(up) / float64(completed), completed
}

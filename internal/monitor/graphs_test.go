package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// stripANSI removes escape sequences so tests can inspect glyphs.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func chartRows(t *testing.T, history []Outcome, width, height int) [][]rune {
	t.Helper()
	lines := strings.Split(stripANSI(RenderOutcomeChart(history, width, height)), "\n")
	require.Len(t, lines, height)
	rows := make([][]rune, height)
	for i, l := range lines {
		rows[i] = []rune(l)
		require.Len(t, rows[i], width)
	}
	return rows
}

func TestRenderOutcomeChart_InvalidSize(t *testing.T) {
	assert.Empty(t, RenderOutcomeChart([]Outcome{Success(200)}, 0, 2))
	assert.Empty(t, RenderOutcomeChart([]Outcome{Success(200)}, 2, 0))
}

func TestRenderOutcomeChart_AllPendingIsBlank(t *testing.T) {
	rows := chartRows(t, NewHistory(10).Snapshot(), 5, 2)
	for _, row := range rows {
		for _, r := range row {
			assert.Equal(t, brailleBase, r)
		}
	}
}

func TestRenderOutcomeChart_Heights(t *testing.T) {
	tests := []struct {
		name       string
		outcome    Outcome
		topRowDots bool
		bottomDots bool
	}{
		{"200 fills to the top", Success(200), true, true},
		{"500 fills half", Success(500), false, true},
		{"failure sits on the baseline", Failure(), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Newest-first with a single point lands on the right edge.
			rows := chartRows(t, []Outcome{tt.outcome}, 3, 2)
			last := len(rows[0]) - 1

			assert.Equal(t, tt.topRowDots, rows[0][last] != brailleBase, "top row")
			assert.Equal(t, tt.bottomDots, rows[1][last] != brailleBase, "bottom row")
			assert.Equal(t, brailleBase, rows[1][0], "older columns stay empty")
		})
	}
}

func TestRenderOutcomeChart_FailureIsSingleDot(t *testing.T) {
	rows := chartRows(t, []Outcome{Failure()}, 1, 1)
	// Right sub-column, bottom dot only (dot 8).
	assert.Equal(t, brailleBase|rune(1<<7), rows[0][0])
}

func TestRenderOutcomeChart_NewestOnTheRight(t *testing.T) {
	// newest 200, oldest failure, 2 points fill one braille column
	rows := chartRows(t, []Outcome{Success(200), Failure()}, 1, 1)
	// left sub-column (older failure): dot 7 only; right sub-column (200): dots 4,5,6,8
	want := brailleBase | rune(1<<6) | rune(1<<3) | rune(1<<4) | rune(1<<5) | rune(1<<7)
	assert.Equal(t, want, rows[0][0])
}

func TestRenderOutcomeChart_TrimsOldest(t *testing.T) {
	history := []Outcome{Success(200), Success(200)}
	for i := 0; i < 20; i++ {
		history = append(history, Failure())
	}
	rows := chartRows(t, history, 1, 1)
	full := brailleBase | rune(0xFF)
	assert.Equal(t, full, rows[0][0], "only the two newest 200s are shown")
}

func TestRenderHistoryStrip(t *testing.T) {
	history := []Outcome{Success(200), Failure(), Success(500), Pending()}

	assert.Equal(t, "■■■·", stripANSI(RenderHistoryStrip(history, 10)))
	assert.Equal(t, "■■", stripANSI(RenderHistoryStrip(history, 2)))
	assert.Empty(t, RenderHistoryStrip(history, 0))
	assert.Empty(t, RenderHistoryStrip(nil, 5))
}

func TestUptime(t *testing.T) {
	ratio, completed := Uptime(NewHistory(5).Snapshot())
	assert.Zero(t, ratio)
	assert.Zero(t, completed)

	ratio, completed = Uptime([]Outcome{Success(200), Success(500), Failure(), Success(301), Pending()})
	assert.Equal(t, 4, completed)
	assert.InDelta(t, 0.5, ratio, 1e-9)
}


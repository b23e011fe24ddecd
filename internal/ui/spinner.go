package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinnerState represents the current state of a spinner.
type SpinnerState int

const (
	SpinnerPending SpinnerState = iota
	SpinnerInProgress
	SpinnerSuccess
	SpinnerFailed
)

// Spinner animation frames - braille scan pattern
var spinnerFrames = []string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}

// Spinner displays an animated status line while a probe round runs.
type Spinner struct {
	mu           sync.Mutex
	w            io.Writer
	label        string
	state        SpinnerState
	frame        int
	startTime    time.Time
	stopChan     chan struct{}
	doneChan     chan struct{}
	running      bool
	lastRendered string
}

// NewSpinner creates a spinner that writes to w.
func NewSpinner(w io.Writer, label string) *Spinner {
	return &Spinner{
		w:     w,
		label: label,
		state: SpinnerPending,
	}
}

// Start begins the animation. Calling Start twice is a no-op.
func (s *Spinner) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.state = SpinnerInProgress
	s.startTime = time.Now()
	s.stopChan = make(chan struct{})
	s.doneChan = make(chan struct{})
	s.mu.Unlock()

	s.render()
	go s.animate()
}

// Stop halts the animation without changing state.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopChan)
	s.mu.Unlock()

	<-s.doneChan
}

// Success stops the spinner and prints a final success line.
func (s *Spinner) Success(label string) {
	s.finish(SpinnerSuccess, label)
}

// Fail stops the spinner and prints a final failure line.
func (s *Spinner) Fail(label string) {
	s.finish(SpinnerFailed, label)
}

// State returns the current spinner state.
func (s *Spinner) State() SpinnerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns the time since the spinner started.
func (s *Spinner) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

func (s *Spinner) finish(state SpinnerState, label string) {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	if label != "" {
		s.label = label
	}

	symbol, color := SymbolSuccess, ColorSuccess
	if state == SpinnerFailed {
		symbol, color = SymbolFail, ColorError
	}

	s.clearLine()
	timing := lipgloss.NewStyle().Foreground(ColorMuted).Render(formatDuration(time.Since(s.startTime)))
	fmt.Fprintf(s.w, "%s %s %s\n", lipgloss.NewStyle().Foreground(color).Render(symbol), s.label, timing)
}

func (s *Spinner) animate() {
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	defer close(s.doneChan)

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(spinnerFrames)
			s.mu.Unlock()
			s.render()
		}
	}
}

func (s *Spinner) render() {
	s.mu.Lock()
	defer s.mu.Unlock()

	style := lipgloss.NewStyle().Foreground(GradientColors[(s.frame/2)%len(GradientColors)])
	line := fmt.Sprintf("%s %s...", style.Render(spinnerFrames[s.frame]), s.label)

	s.clearLine()
	fmt.Fprint(s.w, line)
	s.lastRendered = line
}

// clearLine blanks the previously rendered line. Must be called with s.mu held.
func (s *Spinner) clearLine() {
	if s.lastRendered == "" {
		return
	}
	fmt.Fprint(s.w, "\r"+strings.Repeat(" ", lipgloss.Width(s.lastRendered))+"\r")
	s.lastRendered = ""
}

// formatDuration formats a duration for display (e.g., "0.3s", "1.2s").
func formatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}

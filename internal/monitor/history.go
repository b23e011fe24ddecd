package monitor

// DefaultHistorySize is the number of outcomes retained per site.
const DefaultHistorySize = 50

// History is a fixed-capacity, newest-first window of probe outcomes backed by
// a ring buffer. It starts full of Pending outcomes, so Len always equals Cap.
// History is not safe for concurrent use; Registry serializes access to it.
type History struct {
	data []Outcome
	head int // index of the newest outcome
}

// NewHistory creates a history holding size Pending outcomes.
// A size <= 0 falls back to DefaultHistorySize.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{data: make([]Outcome, size)}
}

// Push records outcome as the newest entry, evicting the oldest.
// It never allocates.
func (h *History) Push(outcome Outcome) {
	h.head = (h.head - 1 + len(h.data)) % len(h.data)
	h.data[h.head] = outcome
}

// At returns the outcome i probes ago (0 is the newest).
func (h *History) At(i int) Outcome {
	return h.data[(h.head+i)%len(h.data)]
}

// Latest returns the newest outcome.
func (h *History) Latest() Outcome {
	return h.data[h.head]
}

// Len returns the number of outcomes held. It always equals Cap.
func (h *History) Len() int {
	return len(h.data)
}

// Cap returns the fixed capacity.
func (h *History) Cap() int {
	return len(h.data)
}

// Snapshot returns an independent newest-first copy of the outcomes.
func (h *History) Snapshot() []Outcome {
	return h.appendTo(make([]Outcome, 0, len(h.data)))
}

// appendTo appends the outcomes newest-first to dst.
func (h *History) appendTo(dst []Outcome) []Outcome {
	dst = append(dst, h.data[h.head:]...)
	return append(dst, h.data[:h.head]...)
}

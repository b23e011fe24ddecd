package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Site answered with a status below 400
	SymbolFail    = "✗" // Site is down
	SymbolPending = "○" // No probe completed yet
	SymbolWarning = "◐" // Site answered with an error status
)

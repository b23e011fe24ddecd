// Package ui provides terminal output components for sitemon's one-shot
// commands.
//
// The full-screen dashboard lives in the monitor package. This package
// covers plain CLI output: a spinner shown while a probe round runs,
// and tables for listing configured sites and their probe results.
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess (green)  - site up
//	ColorWarning (yellow) - site answered with an error status
//	ColorError   (red)    - site down
//	ColorMuted   (gray)   - pending, addresses, timing
package ui

// Package monitor implements the site uptime dashboard: the shared site
// registry, the poller that fills it and the Bubble Tea event loop that
// renders it.
//
// # Architecture
//
// Two independent schedulers share one Registry:
//
//   - Poller: a goroutine that, every interval, probes each site in its own
//     goroutine with its own timeout and pushes the Outcome into that site's
//     History as soon as the probe resolves.
//   - Model: the Bubble Tea event loop. A tickMsg every 200ms takes a fresh
//     Registry.SnapshotAll; key presses drive AppState transitions.
//
// They never talk to each other directly. The Registry's mutex is the only
// synchronization point, and AppState is touched only by the event loop.
//
// # Key Components
//
//	Outcome   - Pending, Success(code) or Failure
//	History   - fixed-size newest-first ring of outcomes, starts all Pending
//	Registry  - ordered, fixed set of sites with WithSiteMut and SnapshotAll
//	Prober    - one GET per probe; any response is Success, any error Failure
//	Poller    - fixed-rate rounds, per-site in-flight guard
//	AppState  - Live/Chart tab and chart site, both saturating, plus closing
//	Model     - Bubble Tea Model/Update/View
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C, Esc        - Quit
//	→/l/Tab, ←/h/Shift+Tab - Next / previous tab
//	↓/j, ↑/k              - Next / previous site on the Chart tab
//	?                     - Toggle full help
package monitor

package monitor

// Tab identifies a dashboard view. Tabs form a closed, ordered set.
type Tab int

const (
	TabLive Tab = iota
	TabChart
)

// tabs lists every tab in display order.
var tabs = []Tab{TabLive, TabChart}

// String returns the tab's title.
func (t Tab) String() string {
	switch t {
	case TabLive:
		return "Live"
	case TabChart:
		return "Chart"
	default:
		return "unknown"
	}
}

// AppState is the dashboard's selection state. It is owned by the event loop
// and never touched by the poller, so it carries no lock. Every transition
// saturates at its bounds.
type AppState struct {
	tab       Tab
	chartSite int
	siteCount int
	closing   bool
}

// NewAppState creates the initial state: Live tab, first chart site, not closing.
func NewAppState(siteCount int) AppState {
	return AppState{siteCount: siteCount}
}

// Tab returns the selected tab.
func (s AppState) Tab() Tab { return s.tab }

// ChartSite returns the index of the site shown on the Chart tab.
func (s AppState) ChartSite() int { return s.chartSite }

// Closing reports whether the dashboard has been asked to exit.
func (s AppState) Closing() bool { return s.closing }

// NextTab moves one tab to the right, staying on the last tab.
func (s *AppState) NextTab() {
	if int(s.tab) < len(tabs)-1 {
		s.tab++
	}
}

// PrevTab moves one tab to the left, staying on the first tab.
func (s *AppState) PrevTab() {
	if s.tab > 0 {
		s.tab--
	}
}

// NextChartSite selects the next site, staying on the last one.
// With no sites the index stays at 0.
func (s *AppState) NextChartSite() {
	if s.chartSite < s.siteCount-1 {
		s.chartSite++
	}
}

// PrevChartSite selects the previous site, staying on the first one.
func (s *AppState) PrevChartSite() {
	if s.chartSite > 0 {
		s.chartSite--
	}
}

// Close marks the state as closing. It cannot be undone.
func (s *AppState) Close() {
	s.closing = true
}

package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sitemon/internal/config"
	"github.com/rileyhilliard/sitemon/internal/ui"
)

const (
	chartHeight  = 8
	minNameWidth = 6
)

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.state.Tab() {
	case TabChart:
		b.WriteString(m.renderChartTab())
	default:
		b.WriteString(m.renderLiveTab())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader renders the title, the tab bar and summary stats.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("sitemon")

	var tabBar []string
	for _, t := range tabs {
		if t == m.state.Tab() {
			tabBar = append(tabBar, TabActiveStyle.Render(t.String()))
		} else {
			tabBar = append(tabBar, TabInactiveStyle.Render(t.String()))
		}
	}

	statsText := fmt.Sprintf(" | %d sites | %d up", len(m.sites), m.UpCount())
	if m.interval > 0 {
		statsText += fmt.Sprintf(" | every %s", m.interval)
	}
	stats := lipgloss.NewStyle().
		Foreground(ColorTextSecondary).
		Render(statsText)

	return HeaderStyle.Render(title + "  " + strings.Join(tabBar, "") + stats)
}

// renderLiveTab renders one row per site in configuration order.
func (m Model) renderLiveTab() string {
	if len(m.sites) == 0 {
		return BodyStyle.Render(LabelStyle.Render("No sites configured"))
	}

	nameWidth := m.nameWidth()
	rows := make([]string, 0, len(m.sites))
	for _, s := range m.sites {
		if m.format == config.FormatLine {
			rows = append(rows, m.renderLineRow(s, nameWidth))
		} else {
			rows = append(rows, m.renderBulletRow(s, nameWidth))
		}
	}

	return BodyStyle.Render(strings.Join(rows, "\n"))
}

// renderBulletRow renders "● name  address  status".
func (m Model) renderBulletRow(s SiteSnapshot, nameWidth int) string {
	symbol := SymbolStatus
	if s.Latest.IsPending() {
		symbol = SymbolPending
	}

	return OutcomeStyle(s.Latest).Render(symbol) + " " +
		SiteNameStyle.Width(nameWidth).Render(s.Name) + "  " +
		OutcomeStyle(s.Latest).Render(s.Latest.String()) + "  " +
		MutedStyle.Render(s.Address)
}

// renderLineRow renders the site as a full-width bar in its status color.
func (m Model) renderLineRow(s SiteSnapshot, nameWidth int) string {
	width := m.width - 2
	if width < nameWidth+2 {
		width = nameWidth + 2
	}

	text := " " + ui.PadRight(s.Name, nameWidth) + "  " + s.Latest.String()
	return OutcomeBadgeStyle(s.Latest).Width(width).Render(text)
}

// renderChartTab renders the site selector and the selected site's history.
func (m Model) renderChartTab() string {
	if len(m.sites) == 0 {
		return BodyStyle.Render(LabelStyle.Render("No sites configured"))
	}

	index := m.state.ChartSite()
	if index >= len(m.sites) {
		index = len(m.sites) - 1
	}
	site := m.sites[index]

	var selector []string
	for i, s := range m.sites {
		if i == index {
			selector = append(selector, SiteSelectedStyle.Render(s.Name))
		} else {
			selector = append(selector, LabelStyle.Render(s.Name))
		}
	}

	chartWidth := m.width - 6
	if chartWidth < 10 {
		chartWidth = 10
	}
	// two outcomes per braille column
	if maxCols := (len(site.History) + 1) / 2; chartWidth > maxCols {
		chartWidth = maxCols
	}

	ratio, completed := Uptime(site.History)
	summary := fmt.Sprintf("%s  %s  latest %s",
		SiteNameStyle.Render(site.Name),
		MutedStyle.Render(site.Address),
		OutcomeStyle(site.Latest).Render(site.Latest.String()))
	if completed > 0 {
		summary += LabelStyle.Render(fmt.Sprintf("  uptime %.0f%% of %d", ratio*100, completed))
	}

	chart := ChartStyle.Render(RenderOutcomeChart(site.History, chartWidth, chartHeight))

	return BodyStyle.Render(strings.Join([]string{
		strings.Join(selector, MutedStyle.Render(" | ")),
		"",
		summary,
		chart,
		RenderHistoryStrip(site.History, m.width-2),
	}, "\n"))
}

// renderFooter renders the key help.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.View(m.keys))
}

// nameWidth returns the widest site name, at least minNameWidth.
func (m Model) nameWidth() int {
	w := minNameWidth
	for _, s := range m.sites {
		if n := lipgloss.Width(s.Name); n > w {
			w = n
		}
	}
	return w
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Non-interactive: the cursor row should look like every other row.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string for CLI output.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// SiteStatus classifies a probed site for the status table.
type SiteStatus int

const (
	SiteStatusPending SiteStatus = iota
	SiteStatusUp
	SiteStatusError
	SiteStatusDown
)

// SiteStatusRow represents a row in the site status table.
type SiteStatusRow struct {
	Status  SiteStatus
	Name    string
	Address string
	Result  string // "200 OK", "down", "pending"
}

// RenderSiteStatusTable renders probe results one site per line.
func RenderSiteStatusTable(rows []SiteStatusRow) string {
	if len(rows) == 0 {
		return "No sites configured\n"
	}

	nameWidth, addrWidth := len("SITE"), len("ADDRESS")
	for _, row := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
		addrWidth = max(addrWidth, lipgloss.Width(row.Address))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	var b strings.Builder
	header := "  " + PadRight("SITE", nameWidth+2) + PadRight("ADDRESS", addrWidth+2) + "RESULT"
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for _, row := range rows {
		symbol, color := statusSymbol(row.Status)
		style := lipgloss.NewStyle().Foreground(color)
		b.WriteString(style.Render(symbol))
		b.WriteString(" ")
		b.WriteString(PadRight(row.Name, nameWidth+2))
		b.WriteString(mutedStyle.Render(PadRight(row.Address, addrWidth+2)))
		b.WriteString(style.Render(row.Result))
		b.WriteString("\n")
	}

	return b.String()
}

func statusSymbol(s SiteStatus) (string, lipgloss.Color) {
	switch s {
	case SiteStatusUp:
		return SymbolSuccess, ColorSuccess
	case SiteStatusError:
		return SymbolWarning, ColorWarning
	case SiteStatusDown:
		return SymbolFail, ColorError
	default:
		return SymbolPending, ColorMuted
	}
}

// padRight pads a string to the specified visible width.
func PadRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

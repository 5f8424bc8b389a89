// Package ui renders terminal tables for the asmir CLI.
package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Row statuses understood by styleStatus.
const (
	StatusOK        = "ok"
	StatusCollision = "collision"
	StatusInvalid   = "invalid"
)

// SymbolRow is one line of the symbols table.
type SymbolRow struct {
	Logical string
	Symbol  string
	Status  string
}

// TableOptions controls RenderSymbols.
type TableOptions struct {
	Color bool
	// MaxNameWidth truncates logical names wider than this many cells.
	// Zero means 40.
	MaxNameWidth int
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))

// RenderSymbols lays rows out in three aligned columns. Logical names are
// quoted so empty and whitespace names stay visible; widths are measured
// in terminal cells so wide runes line up.
func RenderSymbols(rows []SymbolRow, opts TableOptions) string {
	maxName := opts.MaxNameWidth
	if maxName <= 0 {
		maxName = 40
	}

	names := make([]string, len(rows))
	nameWidth := runewidth.StringWidth("logical")
	symWidth := runewidth.StringWidth("symbol")
	for i, row := range rows {
		names[i] = truncate(strconv.Quote(row.Logical), maxName)
		nameWidth = max(nameWidth, runewidth.StringWidth(names[i]))
		symWidth = max(symWidth, runewidth.StringWidth(row.Symbol))
	}

	var b strings.Builder
	header := runewidth.FillRight("logical", nameWidth) + "  " +
		runewidth.FillRight("symbol", symWidth) + "  status"
	if opts.Color {
		header = headerStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteString("\n")

	for i, row := range rows {
		status := row.Status
		if status == "" {
			status = StatusOK
		}
		if opts.Color {
			status = styleStatus(status).Render(status)
		}
		b.WriteString(runewidth.FillRight(names[i], nameWidth))
		b.WriteString("  ")
		b.WriteString(runewidth.FillRight(row.Symbol, symWidth))
		b.WriteString("  ")
		b.WriteString(status)
		b.WriteString("\n")
	}
	return b.String()
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case StatusCollision, StatusInvalid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

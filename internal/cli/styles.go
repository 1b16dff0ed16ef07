package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorError   = lipgloss.Color("#e53935")
	colorSuccess = lipgloss.Color("#43a047")
	colorMuted   = lipgloss.Color("#8a8f98")
	colorAccent  = lipgloss.Color("#2196F3")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// renderTable lays rows out in padded columns under a bold header.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = lipgloss.Width(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var sb strings.Builder
	for i, header := range headers {
		sb.WriteString(headerStyle.Width(widths[i] + 2).Render(header))
	}
	sb.WriteString("\n")
	for i := range headers {
		sb.WriteString(mutedStyle.Render(strings.Repeat("-", widths[i]+2)))
	}
	sb.WriteString("\n")
	for _, row := range rows {
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(cellStyle.Width(widths[i] + 2).Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

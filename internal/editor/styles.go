package editor

import (
	"github.com/adamavenir/embedg/internal/types"
	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor   = lipgloss.Color("111")
	dimColor      = lipgloss.Color("242")
	statusColor   = lipgloss.Color("241")
	dangerColor   = lipgloss.Color("203")
	selectedColor = lipgloss.Color("157")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	dimStyle      = lipgloss.NewStyle().Foreground(dimColor)
	statusStyle   = lipgloss.NewStyle().Foreground(statusColor)
	selectedStyle = lipgloss.NewStyle().Foreground(selectedColor).Bold(true)
	addStyle      = lipgloss.NewStyle().Foreground(accentColor)
	clearStyle    = lipgloss.NewStyle().Foreground(dangerColor)

	embedBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(0, 1)
	activeEmbedBox = embedBox.BorderForeground(accentColor)
)

// embedBar picks a border color from the embed color, falling back to the
// active/inactive palette.
func embedBar(color *int, active bool) lipgloss.Style {
	style := embedBox
	if active {
		style = activeEmbedBox
	}
	if color != nil {
		style = style.BorderLeftForeground(lipgloss.Color(types.FormatColor(color)))
	}
	return style
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"swapnet/backend/libs/pinslot"
)

const cardWidth = 22

var palette = map[pinslot.Color]lipgloss.Color{
	pinslot.ColorSuccess: lipgloss.Color("42"),
	pinslot.ColorWarning: lipgloss.Color("214"),
	pinslot.ColorDanger:  lipgloss.Color("196"),
	pinslot.ColorInfo:    lipgloss.Color("39"),
	pinslot.ColorNeutral: lipgloss.Color("245"),
}

// ColorFor maps a color category to a terminal color.
func ColorFor(c pinslot.Color) lipgloss.Color {
	if col, ok := palette[c]; ok {
		return col
	}
	return palette[pinslot.ColorNeutral]
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Width(cardWidth-2).
			Padding(0, 1)

	focusedBorder = lipgloss.ThickBorder()

	selectedBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("42")).
			Padding(0, 1).
			Bold(true)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(30)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"swapnet/backend/libs/inventory"
	"swapnet/backend/libs/pinslot"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Station %d · battery slots", m.view.StationID)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  order: %s", m.prefs.Order())))
	if m.loading {
		b.WriteString(dimStyle.Render("  refreshing…"))
	}
	b.WriteString("\n")

	if err := m.view.Err(); err != nil {
		b.WriteString(errorStyle.Render("Fetch failed: " + err.Error()))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(errorStyle.Render(m.notice))
		b.WriteString("\n")
	}

	body := m.renderGrid()
	if m.prefs.SidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, sidebarStyle.Render(RenderStatistics(m.view.Statistics())))
	}
	b.WriteString(body)
	b.WriteString("\n")

	if id, ok := m.view.Selected(); ok {
		b.WriteString(selectedBadge.Render(fmt.Sprintf("slot %d selected", id)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderGrid() string {
	if !m.view.Loaded() {
		if m.view.Err() != nil {
			return dimStyle.Render("No slot data.")
		}
		return dimStyle.Render("Loading slots…")
	}
	cards := m.cards()
	if len(cards) == 0 {
		return dimStyle.Render("This station has no slots to show.")
	}

	cols := m.columns()
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		rendered := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			rendered = append(rendered, renderCard(cards[i], i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(c inventory.Card, focused bool) string {
	style := cardStyle.BorderForeground(ColorFor(c.AvailabilityColor))
	if focused {
		style = style.Border(focusedBorder)
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Slot %d", c.Number)),
		lipgloss.NewStyle().Foreground(ColorFor(c.ChargeColor)).Render(fmt.Sprintf("%d%% %s", c.ChargePercent, c.ChargeText)),
		fmt.Sprintf("health %d%%", c.HealthPercent),
		lipgloss.NewStyle().Foreground(ColorFor(c.AvailabilityColor)).Render(c.AvailabilityText),
	}
	switch {
	case c.Selected:
		lines = append(lines, selectedBadge.Render("selected"))
	case c.Bookable:
		lines = append(lines, dimStyle.Render("bookable"))
	default:
		lines = append(lines, "")
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderStatistics formats the statistics block shared by the sidebar and
// the stats command.
func RenderStatistics(st pinslot.Statistics) string {
	label := lipgloss.NewStyle().Width(14).Foreground(lipgloss.Color("245"))
	row := func(name string, value string, color pinslot.Color) string {
		return label.Render(name) + lipgloss.NewStyle().Foreground(ColorFor(color)).Render(value)
	}
	return strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render("Statistics"),
		row("total", fmt.Sprint(st.Total), pinslot.ColorNeutral),
		row("available", fmt.Sprint(st.AvailableCount), pinslot.ColorSuccess),
		row("rented", fmt.Sprint(st.RentedCount), pinslot.ColorInfo),
		row("unavailable", fmt.Sprint(st.UnavailableCount), pinslot.ColorDanger),
		row("availability", fmt.Sprintf("%d%%", st.AvailabilityRatePercent), pinslot.ColorNeutral),
		row("avg charge", fmt.Sprintf("%d%%", st.AverageChargePercent), pinslot.ColorWarning),
		row("avg health", fmt.Sprintf("%d%%", st.AverageHealthPercent), pinslot.ColorNeutral),
	}, "\n")
}

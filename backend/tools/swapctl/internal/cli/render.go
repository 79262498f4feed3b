package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"swapnet/backend/libs/inventory"
	"swapnet/backend/tools/swapctl/internal/tui"
)

const (
	colAvailability = 4
	colCharge       = 2
)

// RenderSlotTable formats cards as a colored table.
func RenderSlotTable(cards []inventory.Card) string {
	rows := make([][]string, len(cards))
	for i, c := range cards {
		renter := ""
		if c.RentedBy != nil {
			renter = strconv.FormatInt(*c.RentedBy, 10)
		}
		bookable := ""
		if c.Bookable {
			bookable = "yes"
		}
		rows[i] = []string{
			strconv.Itoa(c.Number),
			strconv.FormatInt(c.SlotID, 10),
			fmt.Sprintf("%d%% %s", c.ChargePercent, c.ChargeText),
			fmt.Sprintf("%d%%", c.HealthPercent),
			c.AvailabilityText,
			bookable,
			renter,
		}
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("SLOT", "ID", "CHARGE", "HEALTH", "STATUS", "BOOKABLE", "RENTER").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row < 0 || row >= len(cards) {
				return header
			}
			switch col {
			case colAvailability:
				return cell.Foreground(tui.ColorFor(cards[row].AvailabilityColor))
			case colCharge:
				return cell.Foreground(tui.ColorFor(cards[row].ChargeColor))
			default:
				return cell
			}
		})
	return t.Render()
}

package cli

import (
	"fmt"

	"swapnet/backend/libs/inventory"
	"swapnet/backend/libs/pinslot"
)

type SlotsCmd struct {
	Station      int64  `short:"s" required:"" help:"Station ID."`
	Availability string `help:"Only show slots with this status (available, rented, unavailable)."`
	Order        string `default:"slot" enum:"slot,priority" help:"Card order."`
	Bookable     bool   `help:"Only show slots that can be booked."`
}

func (c *SlotsCmd) Run(ctx *Context) error {
	order, _ := inventory.ParseOrder(c.Order)
	var filter inventory.Filter
	if c.Availability != "" {
		availability, ok := pinslot.ParseAvailability(c.Availability)
		if !ok {
			return fmt.Errorf("invalid availability %q", c.Availability)
		}
		filter.Availability = &availability
	}
	filter.BookableOnly = c.Bookable

	view, err := ctx.loadView(c.Station)
	if err != nil {
		return err
	}
	cards := view.FilteredCards(order, filter)
	if len(cards) == 0 {
		fmt.Fprintf(ctx.Out, "Station %d has no matching slots.\n", c.Station)
		return nil
	}
	fmt.Fprintln(ctx.Out, RenderSlotTable(cards))
	return nil
}

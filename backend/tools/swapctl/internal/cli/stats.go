package cli

import (
	"fmt"

	"swapnet/backend/tools/swapctl/internal/tui"
)

type StatsCmd struct {
	Station int64 `short:"s" required:"" help:"Station ID."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	view, err := ctx.loadView(c.Station)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "Station %d\n", c.Station)
	fmt.Fprintln(ctx.Out, tui.RenderStatistics(view.Statistics()))
	return nil
}

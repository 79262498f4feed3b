package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"swapnet/backend/libs/prefs"
	"swapnet/backend/tools/swapctl/internal/tui"
)

type InventoryCmd struct {
	Station int64 `short:"s" required:"" help:"Station ID."`
}

func (c *InventoryCmd) Run(ctx *Context) error {
	loadCtx, cancel := context.WithTimeout(context.Background(), ctx.Timeout)
	saved, err := ctx.Prefs.Load(loadCtx, ctx.Owner)
	cancel()
	if err != nil {
		ctx.Logger.Warn("loading preferences failed, using defaults", zap.Error(err))
		saved = prefs.Default()
	}

	model := tui.NewModel(tui.Options{
		StationID: c.Station,
		Source:    ctx.Source,
		Store:     ctx.Prefs,
		Owner:     ctx.Owner,
		Prefs:     saved,
		Timeout:   ctx.Timeout,
		Logger:    ctx.Logger,
	})

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("inventory screen: %w", err)
	}
	if m, ok := final.(tui.Model); ok {
		saveCtx, cancel := context.WithTimeout(context.Background(), ctx.Timeout)
		if err := ctx.Prefs.Save(saveCtx, ctx.Owner, m.Preferences()); err != nil {
			ctx.Logger.Warn("saving preferences on exit failed", zap.Error(err))
		}
		cancel()
		if id, ok := m.Selected(); ok {
			fmt.Fprintf(ctx.Out, "Selected slot %d at station %d\n", id, c.Station)
		}
	}
	return nil
}

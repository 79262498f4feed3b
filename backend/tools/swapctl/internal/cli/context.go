package cli

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"swapnet/backend/libs/inventory"
	"swapnet/backend/libs/prefs"
	"swapnet/backend/tools/swapctl/internal/tui"
)

// Context is shared by every command.
type Context struct {
	Source  tui.SlotSource
	Prefs   prefs.Store
	Owner   string
	Timeout time.Duration
	Logger  *zap.Logger
	Out     io.Writer
}

// loadView performs one fetch and returns the populated view.
func (c *Context) loadView(stationID int64) (*inventory.View, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	view := inventory.NewView(stationID)
	slots, err := c.Source.FetchSlots(ctx, stationID)
	if err != nil {
		c.Logger.Warn("slot fetch failed", zap.Int64("station_id", stationID), zap.Error(err))
		return nil, err
	}
	view.Load(slots)
	return view, nil
}

package prefs

import (
	"context"
	"errors"
	"fmt"

	"swapnet/backend/libs/inventory"
)

// ErrInvalid is returned by Validate and Save for malformed preferences.
var ErrInvalid = errors.New("prefs: invalid preferences")

// Preferences are per-user view settings. They are loaded when a view opens
// and saved on every toggle.
type Preferences struct {
	SidebarOpen     bool   `json:"sidebar_open" yaml:"sidebarOpen"`
	SlotOrder       string `json:"slot_order" yaml:"slotOrder"`
	HideUnavailable bool   `json:"hide_unavailable" yaml:"hideUnavailable"`
}

// Default returns the settings used when nothing was saved yet.
func Default() Preferences {
	return Preferences{
		SidebarOpen: true,
		SlotOrder:   string(inventory.OrderSlotNumber),
	}
}

// Order returns the parsed slot order.
func (p Preferences) Order() inventory.Order {
	order, _ := inventory.ParseOrder(p.SlotOrder)
	return order
}

// Validate checks the slot order value.
func (p Preferences) Validate() error {
	if _, ok := inventory.ParseOrder(p.SlotOrder); !ok {
		return fmt.Errorf("%w: unknown slot order %q", ErrInvalid, p.SlotOrder)
	}
	return nil
}

// Store is the load/save boundary for preferences.
type Store interface {
	// Load returns the saved preferences of owner, or Default when none exist.
	Load(ctx context.Context, owner string) (Preferences, error)
	Save(ctx context.Context, owner string, p Preferences) error
}

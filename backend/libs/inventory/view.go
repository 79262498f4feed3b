package inventory

import (
	"swapnet/backend/libs/pinslot"
)

// Order selects how cards are laid out.
type Order string

const (
	OrderSlotNumber Order = "slot"
	OrderPriority   Order = "priority"
)

// ParseOrder maps a flag/query value to an Order, defaulting to slot number.
func ParseOrder(raw string) (Order, bool) {
	switch Order(raw) {
	case "", OrderSlotNumber:
		return OrderSlotNumber, true
	case OrderPriority:
		return OrderPriority, true
	default:
		return OrderSlotNumber, false
	}
}

// Card is the rendered form of one slot.
type Card struct {
	SlotID            int64         `json:"slot_id"`
	Number            int           `json:"number"`
	ChargePercent     int           `json:"charge_percent"`
	HealthPercent     int           `json:"health_percent"`
	ChargeText        string        `json:"charge_text"`
	ChargeColor       pinslot.Color `json:"charge_color"`
	AvailabilityText  string        `json:"availability_text"`
	AvailabilityColor pinslot.Color `json:"availability_color"`
	Bookable          bool          `json:"bookable"`
	Selected          bool          `json:"selected"`
	RentedBy          *int64        `json:"rented_by,omitempty"`
}

// NewCard classifies a slot for display.
func NewCard(s pinslot.Slot, selected bool) Card {
	card := Card{
		SlotID:            s.ID,
		Number:            s.Number,
		ChargePercent:     s.ChargePercent,
		HealthPercent:     s.HealthPercent,
		ChargeText:        pinslot.ChargeStatusText(s.ChargeStatus),
		ChargeColor:       pinslot.ChargeStatusColor(s.ChargeStatus),
		AvailabilityText:  pinslot.AvailabilityText(s.Availability),
		AvailabilityColor: pinslot.AvailabilityColor(s.Availability),
		Bookable:          pinslot.IsAvailable(s),
		Selected:          selected,
	}
	if renter, ok := s.Renter(); ok {
		card.RentedBy = &renter
	}
	return card
}

// Arrange orders slots for display.
func Arrange(slots []pinslot.Slot, order Order) []pinslot.Slot {
	if order == OrderPriority {
		return pinslot.SortByAvailabilityPriority(slots)
	}
	return pinslot.SortBySlotNumber(slots)
}

// View holds the inventory of one station: the last fetched slots, the last
// fetch error and the slot selection. It is owned by a single screen and is
// not safe for concurrent use.
type View struct {
	StationID int64

	slots     []pinslot.Slot
	err       error
	loaded    bool
	selection Selection
}

// NewView returns an empty, Unselected view.
func NewView(stationID int64) *View {
	return &View{StationID: stationID}
}

// Load replaces the slot list with a fresh fetch and clears any error.
// The selection is kept.
func (v *View) Load(slots []pinslot.Slot) {
	v.slots = pinslot.Normalize(slots)
	v.err = nil
	v.loaded = true
}

// Fail records a fetch error. The previous list stays visible.
func (v *View) Fail(err error) {
	v.err = err
}

// Err returns the last fetch error, if any.
func (v *View) Err() error { return v.err }

// Loaded reports whether at least one fetch succeeded.
func (v *View) Loaded() bool { return v.loaded }

// Slots returns the current slot list.
func (v *View) Slots() []pinslot.Slot { return v.slots }

// Statistics aggregates the current slot list.
func (v *View) Statistics() pinslot.Statistics {
	return pinslot.ComputeStatistics(v.slots)
}

// Cards renders the current slots in the requested order.
func (v *View) Cards(order Order) []Card {
	arranged := Arrange(v.slots, order)
	cards := make([]Card, len(arranged))
	for i, s := range arranged {
		cards[i] = NewCard(s, v.selection.IsSelected(s.ID))
	}
	return cards
}

// Filter narrows the slots a view renders. The zero value keeps everything.
type Filter struct {
	Availability    *pinslot.Availability
	BookableOnly    bool
	HideUnavailable bool
}

// Apply returns the slots passing f, in their original order.
func (f Filter) Apply(slots []pinslot.Slot) []pinslot.Slot {
	out := slots
	if f.Availability != nil {
		out = pinslot.FilterByAvailability(out, *f.Availability)
	}
	if f.BookableOnly {
		out = pinslot.FilterBookable(out)
	}
	if f.HideUnavailable {
		kept := make([]pinslot.Slot, 0, len(out))
		for _, s := range out {
			if s.Availability != pinslot.Unavailable {
				kept = append(kept, s)
			}
		}
		out = kept
	}
	return out
}

// FilteredCards is Cards restricted to the slots passing f. Statistics are
// unaffected by filtering.
func (v *View) FilteredCards(order Order, f Filter) []Card {
	arranged := Arrange(f.Apply(v.slots), order)
	cards := make([]Card, len(arranged))
	for i, s := range arranged {
		cards[i] = NewCard(s, v.selection.IsSelected(s.ID))
	}
	return cards
}

// Click applies a click on the slot with the given id. Unknown ids and
// slots that are not bookable are no-ops.
func (v *View) Click(slotID int64) bool {
	slot, ok := pinslot.Find(v.slots, slotID)
	if !ok {
		return false
	}
	return v.selection.Click(slot)
}

// Selected returns the selected slot id.
func (v *View) Selected() (int64, bool) {
	return v.selection.Current()
}

// ResetSelection clears the selection.
func (v *View) ResetSelection() {
	v.selection.Reset()
}

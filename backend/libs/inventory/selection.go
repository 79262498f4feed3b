package inventory

import "swapnet/backend/libs/pinslot"

// Selection is the single-choice slot picker. The zero value is Unselected.
type Selection struct {
	slotID   int64
	selected bool
}

// Click selects the slot when it is bookable, replacing any earlier choice.
// Clicking a slot that is not bookable leaves the selection unchanged and
// returns false.
func (s *Selection) Click(slot pinslot.Slot) bool {
	if !pinslot.IsAvailable(slot) {
		return false
	}
	s.slotID = slot.ID
	s.selected = true
	return true
}

// Current returns the selected slot id.
func (s Selection) Current() (int64, bool) {
	return s.slotID, s.selected
}

// IsSelected reports whether id is the current selection.
func (s Selection) IsSelected(id int64) bool {
	return s.selected && s.slotID == id
}

// Reset returns to Unselected, e.g. after a booking went through.
func (s *Selection) Reset() {
	*s = Selection{}
}

package pinslot

import "sort"

// priorityRank puts bookable-looking slots first. The wire ordinals would
// sort unavailable slots ahead of available ones.
func priorityRank(a Availability) int {
	switch a {
	case Available:
		return 0
	case Rented:
		return 1
	case Unavailable:
		return 2
	default:
		return 3
	}
}

// SortByAvailabilityPriority returns a copy ordered available, rented,
// unavailable, then unknown; ties are broken by ascending slot ID.
func SortByAvailabilityPriority(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := priorityRank(out[i].Availability), priorityRank(out[j].Availability)
		if ri != rj {
			return ri < rj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// SortBySlotNumber returns a copy ordered by display number.
func SortBySlotNumber(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// FilterByAvailability keeps slots with the given availability in their
// original relative order.
func FilterByAvailability(slots []Slot, status Availability) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if s.Availability == status {
			out = append(out, s)
		}
	}
	return out
}

// FilterBookable keeps slots that pass IsAvailable.
func FilterBookable(slots []Slot) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if IsAvailable(s) {
			out = append(out, s)
		}
	}
	return out
}

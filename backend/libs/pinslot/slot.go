package pinslot

import "sort"

// ChargeStatus reports whether the battery in a slot finished charging.
type ChargeStatus int

const (
	ChargeNotFull ChargeStatus = 0
	ChargeFull    ChargeStatus = 1
)

// Availability reports whether a slot can currently be offered for a swap.
type Availability int

const (
	Unavailable Availability = 0
	Available   Availability = 1
	Rented      Availability = 2
)

// Slot is one battery bay at a station as delivered by the station service.
type Slot struct {
	ID            int64        `json:"pinID"`
	Number        int          `json:"-"`
	StationID     int64        `json:"stationID"`
	ChargePercent int          `json:"pinPercent"`
	HealthPercent int          `json:"pinHealth"`
	ChargeStatus  ChargeStatus `json:"pinStatus"`
	Availability  Availability `json:"status"`
	RentedBy      *int64       `json:"userID"`
}

// IsAvailable reports whether the slot can be booked: it must be both
// available and fully charged.
func IsAvailable(s Slot) bool {
	return s.Availability == Available && s.ChargeStatus == ChargeFull
}

// Renter returns the user holding the slot. The upstream may leave a stale
// userID on slots that are no longer rented; it is ignored.
func (s Slot) Renter() (int64, bool) {
	if s.Availability != Rented || s.RentedBy == nil {
		return 0, false
	}
	return *s.RentedBy, true
}

// Normalize clamps percentages to [0,100] and fills in missing display
// numbers. Numbers the upstream supplied are kept; slots without one get the
// smallest unused positive numbers in ascending ID order. The input is not
// modified.
func Normalize(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)

	taken := make(map[int]bool, len(out))
	var missing []int
	for i := range out {
		out[i].ChargePercent = clampPercent(out[i].ChargePercent)
		out[i].HealthPercent = clampPercent(out[i].HealthPercent)
		if out[i].Number > 0 {
			taken[out[i].Number] = true
		} else {
			missing = append(missing, i)
		}
	}
	if len(missing) == 0 {
		return out
	}

	sort.SliceStable(missing, func(a, b int) bool { return out[missing[a]].ID < out[missing[b]].ID })
	next := 1
	for _, i := range missing {
		for taken[next] {
			next++
		}
		out[i].Number = next
		taken[next] = true
	}
	return out
}

// Find returns the slot with the given id.
func Find(slots []Slot, id int64) (Slot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return v
	}
}

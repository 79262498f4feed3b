package pinslot

import "math"

// Statistics aggregates a station's slots.
type Statistics struct {
	Total                   int `json:"total"`
	AvailableCount          int `json:"available_count"`
	RentedCount             int `json:"rented_count"`
	UnavailableCount        int `json:"unavailable_count"`
	AvailabilityRatePercent int `json:"availability_rate_percent"`
	AverageChargePercent    int `json:"average_charge_percent"`
	AverageHealthPercent    int `json:"average_health_percent"`
}

// ComputeStatistics counts slots per availability and averages charge and
// health. Percentages are rounded to the nearest integer; an empty input
// yields the zero value.
//
// AvailableCount uses IsAvailable, so an available slot that is still
// charging is counted in none of the three buckets.
func ComputeStatistics(slots []Slot) Statistics {
	var st Statistics
	st.Total = len(slots)
	if st.Total == 0 {
		return st
	}

	var chargeSum, healthSum int
	for _, s := range slots {
		if IsAvailable(s) {
			st.AvailableCount++
		}
		switch s.Availability {
		case Rented:
			st.RentedCount++
		case Unavailable:
			st.UnavailableCount++
		}
		chargeSum += s.ChargePercent
		healthSum += s.HealthPercent
	}

	total := float64(st.Total)
	st.AvailabilityRatePercent = int(math.Round(float64(st.AvailableCount) / total * 100))
	st.AverageChargePercent = int(math.Round(float64(chargeSum) / total))
	st.AverageHealthPercent = int(math.Round(float64(healthSum) / total))
	return st
}

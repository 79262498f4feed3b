package pinslot

import "strings"

// Color is the presentation category a status maps to.
type Color string

const (
	ColorNeutral Color = "neutral"
	ColorWarning Color = "warning"
	ColorSuccess Color = "success"
	ColorDanger  Color = "danger"
	ColorInfo    Color = "info"
)

const unknownText = "unknown"

// ChargeStatusText returns the display label for a charge status.
func ChargeStatusText(status ChargeStatus) string {
	switch status {
	case ChargeNotFull:
		return "not full"
	case ChargeFull:
		return "full"
	default:
		return unknownText
	}
}

// AvailabilityText returns the display label for an availability status.
func AvailabilityText(status Availability) string {
	switch status {
	case Unavailable:
		return "unavailable"
	case Available:
		return "available"
	case Rented:
		return "rented"
	default:
		return unknownText
	}
}

// ChargeStatusColor returns the color category for a charge status.
func ChargeStatusColor(status ChargeStatus) Color {
	switch status {
	case ChargeNotFull:
		return ColorWarning
	case ChargeFull:
		return ColorSuccess
	default:
		return ColorNeutral
	}
}

// AvailabilityColor returns the color category for an availability status.
func AvailabilityColor(status Availability) Color {
	switch status {
	case Unavailable:
		return ColorDanger
	case Available:
		return ColorSuccess
	case Rented:
		return ColorInfo
	default:
		return ColorNeutral
	}
}

func (s ChargeStatus) String() string { return ChargeStatusText(s) }

func (s Availability) String() string { return AvailabilityText(s) }

// ParseAvailability accepts the display label or the numeric wire value.
func ParseAvailability(raw string) (Availability, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "unavailable", "0":
		return Unavailable, true
	case "available", "1":
		return Available, true
	case "rented", "2":
		return Rented, true
	default:
		return 0, false
	}
}

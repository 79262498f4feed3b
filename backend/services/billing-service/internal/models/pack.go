package models

import "time"

// Pack is a prepaid bundle of battery swaps.
type Pack struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	SwapsIncluded int       `json:"swaps_included"`
	Price         float64   `json:"price"`
	ValidityDays  int       `json:"validity_days"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

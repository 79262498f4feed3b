package models

import "time"

// Transaction statuses.
const (
	StatusCharged = "charged"
	StatusPack    = "pack"
)

// Transaction is the billing entry for one battery swap.
type Transaction struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	StationID     int64     `json:"station_id"`
	TakenPinID    int64     `json:"taken_pin_id"`
	ReturnedPinID *int64    `json:"returned_pin_id"`
	PackID        *int64    `json:"pack_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

package models

// Station is a swap station as listed to the dashboard.
type Station struct {
	ID        int64  `db:"id" json:"stationID"`
	Name      string `db:"name" json:"stationName"`
	Address   string `db:"address" json:"address"`
	Status    string `db:"status" json:"status"`
	SlotCount int    `db:"slot_count" json:"slotCount"`
}

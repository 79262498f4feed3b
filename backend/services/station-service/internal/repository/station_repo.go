package repository

import (
	"context"
	"database/sql"
	"errors"

	"swapnet/backend/libs/pinslot"
	"swapnet/backend/services/station-service/internal/models"
)

// ErrStationNotFound indicates an unknown station id.
var ErrStationNotFound = errors.New("station not found")

// StationRepository reads stations and their pins. It never writes.
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository returns repository.
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// List returns all stations with their pin counts.
func (r *StationRepository) List(ctx context.Context) ([]models.Station, error) {
	const query = `
		SELECT s.id, s.name, s.address, s.status, COUNT(p.id)
		FROM stations s
		LEFT JOIN pins p ON p.station_id = s.id
		GROUP BY s.id, s.name, s.address, s.status
		ORDER BY s.id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]models.Station, 0)
	for rows.Next() {
		var s models.Station
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Status, &s.SlotCount); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stations, nil
}

// Get returns one station.
func (r *StationRepository) Get(ctx context.Context, stationID int64) (*models.Station, error) {
	const query = `
		SELECT s.id, s.name, s.address, s.status,
		       (SELECT COUNT(*) FROM pins p WHERE p.station_id = s.id)
		FROM stations s
		WHERE s.id = $1
	`
	var s models.Station
	err := r.db.QueryRowContext(ctx, query, stationID).Scan(&s.ID, &s.Name, &s.Address, &s.Status, &s.SlotCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListPins returns the pins of a station ordered by id.
func (r *StationRepository) ListPins(ctx context.Context, stationID int64) ([]pinslot.Slot, error) {
	const query = `
		SELECT id, station_id, pin_percent, pin_health, pin_status, status, user_id
		FROM pins
		WHERE station_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, stationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pins := make([]pinslot.Slot, 0)
	for rows.Next() {
		var (
			p      pinslot.Slot
			charge int
			avail  int
			userID sql.NullInt64
		)
		if err := rows.Scan(
			&p.ID,
			&p.StationID,
			&p.ChargePercent,
			&p.HealthPercent,
			&charge,
			&avail,
			&userID,
		); err != nil {
			return nil, err
		}
		p.ChargeStatus = pinslot.ChargeStatus(charge)
		p.Availability = pinslot.Availability(avail)
		if userID.Valid {
			id := userID.Int64
			p.RentedBy = &id
		}
		pins = append(pins, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pins, nil
}

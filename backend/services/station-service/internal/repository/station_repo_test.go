package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	libdb "swapnet/backend/libs/db"
	"swapnet/backend/libs/pinslot"
)

func TestStationRepositoryAgainstPostgres(t *testing.T) {
	dsn := os.Getenv("SWAPNET_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("SWAPNET_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	sqlDB, err := libdb.NewPostgresDB(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer sqlDB.Close()

	schema, err := os.ReadFile("../../migrations/001_init.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := sqlDB.ExecContext(ctx, string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	defer tx.Rollback()

	var stationID int64
	if err := tx.QueryRowContext(ctx, `INSERT INTO stations (name, address) VALUES ('Test depot', 'Dock 4') RETURNING id`).Scan(&stationID); err != nil {
		t.Fatalf("insert station: %v", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO pins (station_id, pin_percent, pin_health, pin_status, status, user_id)
		VALUES ($1, 100, 97, 1, 1, NULL), ($1, 45, 90, 0, 2, 77)
	`, stationID); err != nil {
		t.Fatalf("insert pins: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	t.Cleanup(func() {
		sqlDB.ExecContext(ctx, `DELETE FROM pins WHERE station_id = $1`, stationID)
		sqlDB.ExecContext(ctx, `DELETE FROM stations WHERE id = $1`, stationID)
	})

	repo := NewStationRepository(sqlDB)

	station, err := repo.Get(ctx, stationID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if station.SlotCount != 2 {
		t.Fatalf("expected 2 slots, got %d", station.SlotCount)
	}

	pins, err := repo.ListPins(ctx, stationID)
	if err != nil {
		t.Fatalf("list pins: %v", err)
	}
	if len(pins) != 2 {
		t.Fatalf("expected 2 pins, got %d", len(pins))
	}
	if !pinslot.IsAvailable(pins[0]) || pins[0].RentedBy != nil {
		t.Fatalf("unexpected first pin %+v", pins[0])
	}
	if renter, ok := pins[1].Renter(); !ok || renter != 77 {
		t.Fatalf("expected renter 77, got %d %v", renter, ok)
	}

	if _, err := repo.Get(ctx, -1); !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}
}

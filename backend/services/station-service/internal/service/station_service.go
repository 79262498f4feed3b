package service

import (
	"context"

	"go.uber.org/zap"

	"swapnet/backend/libs/pinslot"
	"swapnet/backend/services/station-service/internal/models"
)

// StationReader is the storage contract used by the service.
type StationReader interface {
	List(ctx context.Context) ([]models.Station, error)
	Get(ctx context.Context, stationID int64) (*models.Station, error)
	ListPins(ctx context.Context, stationID int64) ([]pinslot.Slot, error)
}

// StationService serves read-only station projections.
type StationService struct {
	repo   StationReader
	logger *zap.Logger
}

// NewStationService builds service.
func NewStationService(repo StationReader, logger *zap.Logger) *StationService {
	return &StationService{repo: repo, logger: logger}
}

// Stations lists all stations.
func (s *StationService) Stations(ctx context.Context) ([]models.Station, error) {
	return s.repo.List(ctx)
}

// Station returns a single station.
func (s *StationService) Station(ctx context.Context, stationID int64) (*models.Station, error) {
	return s.repo.Get(ctx, stationID)
}

// Pins returns the pins of an existing station. An unknown station yields
// repository.ErrStationNotFound rather than an empty list.
func (s *StationService) Pins(ctx context.Context, stationID int64) ([]pinslot.Slot, error) {
	if _, err := s.repo.Get(ctx, stationID); err != nil {
		return nil, err
	}
	pins, err := s.repo.ListPins(ctx, stationID)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("pins loaded", zap.Int64("station_id", stationID), zap.Int("count", len(pins)))
	return pins, nil
}

package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"swapnet/backend/libs/pinslot"
)

// ErrStationNotFound is returned when the station service answers 404.
var ErrStationNotFound = errors.New("clients: station not found")

// StationsClient fetches station and pin data from station-service.
type StationsClient struct {
	base *BaseClient
}

// NewStationsClient returns client.
func NewStationsClient(baseURL string, httpClient HTTPDoer) *StationsClient {
	return &StationsClient{base: NewBaseClient("stations", baseURL, httpClient)}
}

// ListStations fetches upstream data.
func (c *StationsClient) ListStations(ctx context.Context) (int, []byte, error) {
	return c.base.Do(ctx, http.MethodGet, "/stations", nil, nil)
}

// GetStation fetches a single station.
func (c *StationsClient) GetStation(ctx context.Context, stationID int64) (int, []byte, error) {
	return c.base.Do(ctx, http.MethodGet, fmt.Sprintf("/stations/%d", stationID), nil, nil)
}

// FetchPins returns the raw pin list of a station.
func (c *StationsClient) FetchPins(ctx context.Context, stationID int64) (int, []byte, error) {
	return c.base.Do(ctx, http.MethodGet, fmt.Sprintf("/stations/%d/pins", stationID), nil, nil)
}

// FetchSlots fetches and decodes the pin list of a station. Every call is a
// fresh upstream request.
func (c *StationsClient) FetchSlots(ctx context.Context, stationID int64) ([]pinslot.Slot, error) {
	status, body, err := c.FetchPins(ctx, stationID)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %d", ErrStationNotFound, stationID)
	case status != http.StatusOK:
		return nil, fmt.Errorf("%w: %d", ErrUpstreamStatus, status)
	}

	var slots []pinslot.Slot
	if err := json.Unmarshal(body, &slots); err != nil {
		return nil, fmt.Errorf("clients: decode pins: %w", err)
	}
	if slots == nil {
		slots = []pinslot.Slot{}
	}
	return slots, nil
}

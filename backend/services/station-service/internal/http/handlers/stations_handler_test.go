package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"swapnet/backend/libs/pinslot"
	httpserver "swapnet/backend/services/station-service/internal/http"
	"swapnet/backend/services/station-service/internal/http/handlers"
	"swapnet/backend/services/station-service/internal/models"
	"swapnet/backend/services/station-service/internal/repository"
	"swapnet/backend/services/station-service/internal/service"
)

type fakeReader struct {
	stations map[int64]models.Station
	pins     map[int64][]pinslot.Slot
	err      error
}

func (f *fakeReader) List(ctx context.Context) ([]models.Station, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Station, 0, len(f.stations))
	for _, s := range f.stations {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeReader) Get(ctx context.Context, stationID int64) (*models.Station, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.stations[stationID]
	if !ok {
		return nil, repository.ErrStationNotFound
	}
	return &s, nil
}

func (f *fakeReader) ListPins(ctx context.Context, stationID int64) ([]pinslot.Slot, error) {
	return append([]pinslot.Slot{}, f.pins[stationID]...), nil
}

func newRouter(reader *fakeReader) http.Handler {
	logger := zap.NewNop()
	h := handlers.NewStationsHandler(service.NewStationService(reader, logger), logger)
	return httpserver.NewRouter(httpserver.Routes{
		Stations: h.List,
		Station:  h.Get,
		Pins:     h.Pins,
		Health:   handlers.NewHealthHandler(),
	})
}

func TestPinsReturnsWireShape(t *testing.T) {
	renter := int64(12)
	reader := &fakeReader{
		stations: map[int64]models.Station{3: {ID: 3, Name: "Depot"}},
		pins: map[int64][]pinslot.Slot{3: {
			{ID: 1, StationID: 3, ChargePercent: 100, HealthPercent: 99, ChargeStatus: pinslot.ChargeFull, Availability: pinslot.Available},
			{ID: 2, StationID: 3, ChargePercent: 70, HealthPercent: 88, ChargeStatus: pinslot.ChargeNotFull, Availability: pinslot.Rented, RentedBy: &renter},
		}},
	}

	rec := httptest.NewRecorder()
	newRouter(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stations/3/pins", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 pins, got %d", len(raw))
	}
	for _, key := range []string{"pinID", "pinPercent", "pinStatus", "pinHealth", "status", "userID", "stationID"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("missing key %q in %v", key, raw[0])
		}
	}
	if raw[0]["userID"] != nil {
		t.Errorf("expected null userID, got %v", raw[0]["userID"])
	}
	if raw[1]["userID"].(float64) != 12 {
		t.Errorf("expected userID 12, got %v", raw[1]["userID"])
	}
}

func TestPinsUnknownStation(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&fakeReader{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stations/9/pins", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPinsEmptyStationIsEmptyArray(t *testing.T) {
	reader := &fakeReader{stations: map[int64]models.Station{4: {ID: 4}}}
	rec := httptest.NewRecorder()
	newRouter(reader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stations/4/pins", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestInvalidStationID(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&fakeReader{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stations/abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStoreFailureIs500(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&fakeReader{err: errors.New("connection reset")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stations", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&fakeReader{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/stations", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodGet {
		t.Fatalf("expected Allow header, got %q", rec.Header().Get("Allow"))
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"swapnet/backend/libs/pinslot"
	"swapnet/backend/services/api-gateway/internal/clients"
	"swapnet/backend/services/api-gateway/internal/http/middleware"
)

const rentedPins = `[{"pinID":4,"pinPercent":100,"pinStatus":1,"pinHealth":95,"status":1,"userID":null,"stationID":7},` +
	`{"pinID":5,"pinPercent":40,"pinStatus":0,"pinHealth":88,"status":2,"userID":55,"stationID":7}]`

func newStationsMux(t *testing.T) *http.ServeMux {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stations/7":
			_, _ = w.Write([]byte(`{"stationID":7,"stationName":"Harbour"}`))
		case "/stations/7/pins":
			_, _ = w.Write([]byte(rentedPins))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"station not found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	h := NewStationsHandlers(clients.NewStationsClient(upstream.URL, clients.NewDefaultHTTPClient(time.Second)), zap.NewNop())
	mux := http.NewServeMux()
	mux.HandleFunc("/api/stations/{stationID}", h.Get)
	mux.HandleFunc("/api/stations/{stationID}/pins", h.Pins)
	return mux
}

func serveAs(mux http.Handler, target, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithIdentity(req.Context(), 1, role))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestStationDetailPassthrough(t *testing.T) {
	mux := newStationsMux(t)

	rec := serveAs(mux, "/api/stations/7", middleware.DefaultRole)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Harbour") {
		t.Fatalf("unexpected station response %d %s", rec.Code, rec.Body.String())
	}
	if rec := serveAs(mux, "/api/stations/8", middleware.DefaultRole); rec.Code != http.StatusNotFound {
		t.Fatalf("expected upstream 404, got %d", rec.Code)
	}
	if rec := serveAs(mux, "/api/stations/abc", middleware.DefaultRole); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPinsHideRentersFromDrivers(t *testing.T) {
	mux := newStationsMux(t)

	rec := serveAs(mux, "/api/stations/7/pins", middleware.DefaultRole)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var slots []pinslot.Slot
	if err := json.Unmarshal(rec.Body.Bytes(), &slots); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(slots) != 2 || slots[1].Availability != pinslot.Rented {
		t.Fatalf("unexpected slots %+v", slots)
	}
	for _, s := range slots {
		if s.RentedBy != nil {
			t.Fatalf("driver must not see renter of slot %d", s.ID)
		}
	}

	rec = serveAs(mux, "/api/stations/7/pins", middleware.RoleOperator)
	if rec.Code != http.StatusOK || rec.Body.String() != rentedPins {
		t.Fatalf("operator must get the upstream list unchanged, got %d %s", rec.Code, rec.Body.String())
	}

	if rec := serveAs(mux, "/api/stations/9/pins", middleware.DefaultRole); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown station, got %d", rec.Code)
	}
}

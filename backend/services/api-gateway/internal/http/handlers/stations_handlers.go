package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"swapnet/backend/services/api-gateway/internal/clients"
	"swapnet/backend/services/api-gateway/internal/http/middleware"
)

// StationsHandlers proxies station endpoints.
type StationsHandlers struct {
	client *clients.StationsClient
	logger *zap.Logger
}

// NewStationsHandlers returns handler.
func NewStationsHandlers(client *clients.StationsClient, logger *zap.Logger) *StationsHandlers {
	return &StationsHandlers{client: client, logger: logger}
}

// List handles GET /api/stations.
func (h *StationsHandlers) List(w http.ResponseWriter, r *http.Request) {
	status, body, err := h.client.ListStations(r.Context())
	if err != nil {
		h.logger.Error("stations proxy failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "stations service unavailable")
		return
	}
	writeRaw(w, status, body)
}

// Get handles GET /api/stations/{stationID}.
func (h *StationsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	stationID, ok := stationIDFromPath(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	status, body, err := h.client.GetStation(r.Context(), stationID)
	if err != nil {
		h.logger.Error("station proxy failed", zap.Int64("station_id", stationID), zap.Error(err))
		writeError(w, http.StatusBadGateway, "stations service unavailable")
		return
	}
	writeRaw(w, status, body)
}

// Pins handles GET /api/stations/{stationID}/pins. Operators get the
// upstream pin list unchanged; other callers get it with renter ids removed.
func (h *StationsHandlers) Pins(w http.ResponseWriter, r *http.Request) {
	stationID, ok := stationIDFromPath(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}

	if !middleware.IsOperator(r.Context()) {
		slots, err := h.client.FetchSlots(r.Context(), stationID)
		if err != nil {
			writeSlotFetchError(w, h.logger, stationID, err)
			return
		}
		for i := range slots {
			slots[i].RentedBy = nil
		}
		writeJSON(w, http.StatusOK, slots)
		return
	}

	status, body, err := h.client.FetchPins(r.Context(), stationID)
	if err != nil {
		h.logger.Error("pins proxy failed", zap.Int64("station_id", stationID), zap.Error(err))
		writeError(w, http.StatusBadGateway, "stations service unavailable")
		return
	}
	writeRaw(w, status, body)
}

package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"swapnet/backend/services/station-service/internal/repository"
	"swapnet/backend/services/station-service/internal/service"
)

// StationsHandler serves station and pin reads.
type StationsHandler struct {
	svc    *service.StationService
	logger *zap.Logger
}

// NewStationsHandler builds handler set.
func NewStationsHandler(svc *service.StationService, logger *zap.Logger) *StationsHandler {
	return &StationsHandler{svc: svc, logger: logger}
}

// List handles GET /stations.
func (h *StationsHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.svc.Stations(r.Context())
	if err != nil {
		h.logger.Error("list stations failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch stations")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stations": stations,
	})
}

// Get handles GET /stations/{stationID}.
func (h *StationsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stationID, ok := stationIDFromPath(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	station, err := h.svc.Station(r.Context(), stationID)
	if err != nil {
		h.writeLookupError(w, stationID, err)
		return
	}
	writeJSON(w, http.StatusOK, station)
}

// Pins handles GET /stations/{stationID}/pins. The body is a bare JSON
// array of pin objects.
func (h *StationsHandler) Pins(w http.ResponseWriter, r *http.Request) {
	stationID, ok := stationIDFromPath(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	pins, err := h.svc.Pins(r.Context(), stationID)
	if err != nil {
		h.writeLookupError(w, stationID, err)
		return
	}
	writeJSON(w, http.StatusOK, pins)
}

func (h *StationsHandler) writeLookupError(w http.ResponseWriter, stationID int64, err error) {
	if errors.Is(err, repository.ErrStationNotFound) {
		writeError(w, http.StatusNotFound, "station not found")
		return
	}
	h.logger.Error("station lookup failed", zap.Int64("station_id", stationID), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "failed to fetch station")
}

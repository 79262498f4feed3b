package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"swapnet/backend/libs/inventory"
	"swapnet/backend/libs/pinslot"
	"swapnet/backend/services/api-gateway/internal/clients"
	"swapnet/backend/services/api-gateway/internal/http/middleware"
	"swapnet/backend/services/api-gateway/internal/metrics"
)

// SlotFetcher loads the current pin list of a station.
type SlotFetcher interface {
	FetchSlots(ctx context.Context, stationID int64) ([]pinslot.Slot, error)
}

// SlotsHandlers renders the inventory view of a station.
type SlotsHandlers struct {
	fetcher SlotFetcher
	logger  *zap.Logger
}

// NewSlotsHandlers returns handler.
func NewSlotsHandlers(fetcher SlotFetcher, logger *zap.Logger) *SlotsHandlers {
	return &SlotsHandlers{fetcher: fetcher, logger: logger}
}

type slotsResponse struct {
	StationID  int64              `json:"station_id"`
	Order      inventory.Order    `json:"order"`
	Slots      []inventory.Card   `json:"slots"`
	Statistics pinslot.Statistics `json:"statistics"`
	Selected   *int64             `json:"selected_slot_id,omitempty"`
}

type slotsQuery struct {
	order    inventory.Order
	filter   inventory.Filter
	selected int64
}

func parseSlotsQuery(values url.Values) (slotsQuery, string) {
	var q slotsQuery

	order, ok := inventory.ParseOrder(values.Get("order"))
	if !ok {
		return q, "invalid order"
	}
	q.order = order

	if raw := values.Get("availability"); raw != "" {
		availability, ok := pinslot.ParseAvailability(raw)
		if !ok {
			return q, "invalid availability"
		}
		q.filter.Availability = &availability
	}
	if raw := values.Get("bookable"); raw != "" {
		bookable, err := strconv.ParseBool(raw)
		if err != nil {
			return q, "invalid bookable flag"
		}
		q.filter.BookableOnly = bookable
	}
	if raw := values.Get("selected"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, "invalid selected slot"
		}
		q.selected = id
	}
	return q, ""
}

// Slots handles GET /api/stations/{stationID}/slots.
//
// Query: availability (label or ordinal), order (slot|priority),
// bookable (bool), selected (slot id to click). Statistics always cover the
// whole station. Renter ids are only shown to operators.
func (h *SlotsHandlers) Slots(w http.ResponseWriter, r *http.Request) {
	stationID, ok := stationIDFromPath(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	q, problem := parseSlotsQuery(r.URL.Query())
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}

	view, ok := h.loadView(w, r, stationID)
	if !ok {
		return
	}
	if q.selected != 0 {
		view.Click(q.selected)
	}

	cards := view.FilteredCards(q.order, q.filter)
	if !middleware.IsOperator(r.Context()) {
		for i := range cards {
			cards[i].RentedBy = nil
		}
	}
	resp := slotsResponse{
		StationID:  stationID,
		Order:      q.order,
		Slots:      cards,
		Statistics: view.Statistics(),
	}
	if id, ok := view.Selected(); ok {
		resp.Selected = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

// Statistics handles GET /api/stations/{stationID}/slots/statistics.
func (h *SlotsHandlers) Statistics(w http.ResponseWriter, r *http.Request) {
	stationID, ok := stationIDFromPath(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid station id")
		return
	}
	view, ok := h.loadView(w, r, stationID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, view.Statistics())
}

func (h *SlotsHandlers) loadView(w http.ResponseWriter, r *http.Request, stationID int64) (*inventory.View, bool) {
	view := inventory.NewView(stationID)
	slots, err := h.fetcher.FetchSlots(r.Context(), stationID)
	if err != nil {
		h.writeFetchError(w, stationID, err)
		return nil, false
	}
	view.Load(slots)
	recordSlotGauge(stationID, view.Statistics())
	return view, true
}

func (h *SlotsHandlers) writeFetchError(w http.ResponseWriter, stationID int64, err error) {
	writeSlotFetchError(w, h.logger, stationID, err)
}

func writeSlotFetchError(w http.ResponseWriter, logger *zap.Logger, stationID int64, err error) {
	switch {
	case errors.Is(err, clients.ErrStationNotFound):
		writeError(w, http.StatusNotFound, "station not found")
	case errors.Is(err, clients.ErrCircuitOpen):
		logger.Warn("stations upstream circuit open", zap.Int64("station_id", stationID))
		writeError(w, http.StatusServiceUnavailable, "stations service unavailable")
	default:
		logger.Error("slot fetch failed", zap.Int64("station_id", stationID), zap.Error(err))
		writeError(w, http.StatusBadGateway, "stations service unavailable")
	}
}

func recordSlotGauge(stationID int64, st pinslot.Statistics) {
	station := strconv.FormatInt(stationID, 10)
	metrics.StationSlots.WithLabelValues(station, pinslot.Available.String()).Set(float64(st.AvailableCount))
	metrics.StationSlots.WithLabelValues(station, pinslot.Rented.String()).Set(float64(st.RentedCount))
	metrics.StationSlots.WithLabelValues(station, pinslot.Unavailable.String()).Set(float64(st.UnavailableCount))
}

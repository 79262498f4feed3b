package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"swapnet/backend/services/billing-service/internal/service"
)

// SwapRecordedHandler receives completed swaps from station operators.
type SwapRecordedHandler struct {
	service *service.BillingService
	logger  *zap.Logger
}

// NewSwapRecordedHandler builds handler.
func NewSwapRecordedHandler(svc *service.BillingService, logger *zap.Logger) *SwapRecordedHandler {
	return &SwapRecordedHandler{
		service: svc,
		logger:  logger,
	}
}

type swapRecordedRequest struct {
	UserID        int64  `json:"user_id"`
	StationID     int64  `json:"station_id"`
	TakenPinID    int64  `json:"taken_pin_id"`
	ReturnedPinID *int64 `json:"returned_pin_id"`
	PackID        *int64 `json:"pack_id"`
}

// ServeHTTP handles POST /internal/swaps.
func (h *SwapRecordedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req swapRecordedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	tx, err := h.service.RecordSwap(r.Context(), service.RecordSwapInput{
		UserID:        req.UserID,
		StationID:     req.StationID,
		TakenPinID:    req.TakenPinID,
		ReturnedPinID: req.ReturnedPinID,
		PackID:        req.PackID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSwap):
			writeError(w, http.StatusBadRequest, err.Error())
		case service.IsPackNotFound(err):
			writeError(w, http.StatusNotFound, "pack not found")
		case errors.Is(err, service.ErrPackExhausted):
			writeError(w, http.StatusConflict, "pack has no swaps left")
		default:
			h.logger.Error("failed to record swap", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to record swap")
		}
		return
	}

	writeJSON(w, http.StatusCreated, tx)
}

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"swapnet/backend/services/billing-service/internal/service"
)

// NewPacksHandler returns GET /packs handler.
func NewPacksHandler(svc *service.BillingService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		packs, err := svc.Packs(r.Context())
		if err != nil {
			logger.Error("failed to load packs", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load packs")
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"packs": packs,
		})
	}
}

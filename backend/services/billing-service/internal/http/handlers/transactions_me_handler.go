package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"swapnet/backend/services/billing-service/internal/service"
)

const (
	userIDHeader        = "X-User-ID"
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// NewTransactionsMeHandler returns GET /transactions/me handler. The caller
// is identified by the X-User-ID header set by the api-gateway.
func NewTransactionsMeHandler(svc *service.BillingService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(userIDHeader)
		if userIDStr == "" {
			writeError(w, http.StatusUnauthorized, "missing user id header")
			return
		}
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id header")
			return
		}

		limit := defaultHistoryLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = min(n, maxHistoryLimit)
		}

		transactions, err := svc.TransactionsForUser(r.Context(), userID, limit)
		if err != nil {
			logger.Error("failed to load transactions", zap.Int64("user_id", userID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load transactions")
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"transactions": transactions,
		})
	}
}

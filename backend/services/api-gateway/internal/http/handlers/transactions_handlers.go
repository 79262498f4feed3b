package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"swapnet/backend/services/api-gateway/internal/clients"
	"swapnet/backend/services/api-gateway/internal/http/middleware"
)

// TransactionsHandlers proxies the caller's transaction history.
type TransactionsHandlers struct {
	client *clients.TransactionsClient
	logger *zap.Logger
}

// NewTransactionsHandlers returns handler.
func NewTransactionsHandlers(client *clients.TransactionsClient, logger *zap.Logger) *TransactionsHandlers {
	return &TransactionsHandlers{client: client, logger: logger}
}

// Me handles GET /api/transactions/me. An optional limit query parameter is
// passed to the transactions service, which caps it.
func (h *TransactionsHandlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	status, body, err := h.client.ListForUser(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("transactions proxy failed", zap.Int64("user_id", userID), zap.Error(err))
		writeError(w, http.StatusBadGateway, "transactions service unavailable")
		return
	}
	writeRaw(w, status, body)
}

package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"swapnet/backend/services/api-gateway/internal/clients"
)

// PacksHandlers proxies the service pack catalogue.
type PacksHandlers struct {
	client *clients.PacksClient
	logger *zap.Logger
}

// NewPacksHandlers returns handler.
func NewPacksHandlers(client *clients.PacksClient, logger *zap.Logger) *PacksHandlers {
	return &PacksHandlers{client: client, logger: logger}
}

// List handles GET /api/packs.
func (h *PacksHandlers) List(w http.ResponseWriter, r *http.Request) {
	status, body, err := h.client.ListPacks(r.Context())
	if err != nil {
		h.logger.Error("packs proxy failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "packs service unavailable")
		return
	}
	writeRaw(w, status, body)
}

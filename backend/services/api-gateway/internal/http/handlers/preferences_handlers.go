package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"swapnet/backend/libs/prefs"
	"swapnet/backend/services/api-gateway/internal/http/middleware"
)

// PreferencesHandlers serves the caller's view preferences.
type PreferencesHandlers struct {
	store  prefs.Store
	logger *zap.Logger
}

// NewPreferencesHandlers returns handler.
func NewPreferencesHandlers(store prefs.Store, logger *zap.Logger) *PreferencesHandlers {
	return &PreferencesHandlers{store: store, logger: logger}
}

func ownerKey(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10)
}

// Serve dispatches GET and PUT /api/me/preferences.
func (h *PreferencesHandlers) Serve(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.Get(w, r)
	case http.MethodPut:
		h.Put(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// Get returns saved preferences or the defaults.
func (h *PreferencesHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	p, err := h.store.Load(r.Context(), ownerKey(userID))
	if err != nil {
		h.logger.Error("load preferences failed", zap.Int64("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load preferences")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Put replaces the caller's preferences.
func (h *PreferencesHandlers) Put(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p := prefs.Default()
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.store.Save(r.Context(), ownerKey(userID), p); err != nil {
		if errors.Is(err, prefs.ErrInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("save preferences failed", zap.Int64("user_id", userID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to save preferences")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

package httpserver

import (
	"net/http"

	"swapnet/backend/services/api-gateway/internal/http/handlers"
	"swapnet/backend/services/api-gateway/internal/http/middleware"
)

// RouterDeps collects handler dependencies.
type RouterDeps struct {
	AuthHandlers         *handlers.AuthHandlers
	StationsHandlers     *handlers.StationsHandlers
	SlotsHandlers        *handlers.SlotsHandlers
	PacksHandlers        *handlers.PacksHandlers
	TransactionsHandlers *handlers.TransactionsHandlers
	PreferencesHandlers  *handlers.PreferencesHandlers
	HealthHandler        http.HandlerFunc
	MetricsHandler       http.Handler
}

// NewRouter wires HTTP routes with middleware.
func NewRouter(deps RouterDeps, authMiddleware func(http.Handler) http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/health", method(http.MethodGet, deps.HealthHandler))
	if deps.MetricsHandler != nil {
		mux.Handle("/metrics", method(http.MethodGet, deps.MetricsHandler))
	}

	mux.Handle("/api/auth/register", method(http.MethodPost, http.HandlerFunc(deps.AuthHandlers.Register)))
	mux.Handle("/api/auth/login", method(http.MethodPost, http.HandlerFunc(deps.AuthHandlers.Login)))

	mux.Handle("/api/stations", method(http.MethodGet, http.HandlerFunc(deps.StationsHandlers.List)))
	mux.Handle("/api/stations/{stationID}", method(http.MethodGet, http.HandlerFunc(deps.StationsHandlers.Get)))
	mux.Handle("/api/packs", method(http.MethodGet, http.HandlerFunc(deps.PacksHandlers.List)))

	authenticated := func(handler http.HandlerFunc) http.Handler {
		return middleware.Chain(handler, authMiddleware)
	}

	mux.Handle("/api/stations/{stationID}/pins", method(http.MethodGet, authenticated(deps.StationsHandlers.Pins)))
	mux.Handle("/api/stations/{stationID}/slots", method(http.MethodGet, authenticated(deps.SlotsHandlers.Slots)))
	mux.Handle("/api/stations/{stationID}/slots/statistics", method(http.MethodGet, authenticated(deps.SlotsHandlers.Statistics)))
	mux.Handle("/api/transactions/me", method(http.MethodGet, authenticated(deps.TransactionsHandlers.Me)))
	mux.Handle("/api/me/preferences", authenticated(deps.PreferencesHandlers.Serve))

	return mux
}

func method(expected string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler.ServeHTTP(w, r)
	})
}

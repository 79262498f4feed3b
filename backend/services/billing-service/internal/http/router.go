package httpserver

import "net/http"

// Routes groups HTTP handlers.
type Routes struct {
	SwapRecorded   http.Handler
	TransactionsMe http.HandlerFunc
	Packs          http.HandlerFunc
	Health         http.HandlerFunc
}

// NewRouter registers service endpoints.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.SwapRecorded != nil {
		mux.Handle("/internal/swaps", method(http.MethodPost, routes.SwapRecorded.ServeHTTP))
	}
	if routes.TransactionsMe != nil {
		mux.Handle("/transactions/me", method(http.MethodGet, routes.TransactionsMe))
	}
	if routes.Packs != nil {
		mux.Handle("/packs", method(http.MethodGet, routes.Packs))
	}
	if routes.Health != nil {
		mux.Handle("/health", method(http.MethodGet, routes.Health))
	}
	return mux
}

func method(expected string, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != expected {
			w.Header().Set("Allow", expected)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handler(w, r)
	}
}

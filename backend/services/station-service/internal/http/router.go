package httpserver

import "net/http"

// Routes groups handlers.
type Routes struct {
	Stations http.HandlerFunc
	Station  http.HandlerFunc
	Pins     http.HandlerFunc
	Health   http.HandlerFunc
}

// NewRouter registers endpoints.
func NewRouter(routes Routes) http.Handler {
	mux := http.NewServeMux()
	if routes.Stations != nil {
		mux.Handle("/stations", method(http.MethodGet, routes.Stations))
	}
	if routes.Station != nil {
		mux.Handle("/stations/{stationID}", method(http.MethodGet, routes.Station))
	}
	if routes.Pins != nil {
		mux.Handle("/stations/{stationID}/pins", method(http.MethodGet, routes.Pins))
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

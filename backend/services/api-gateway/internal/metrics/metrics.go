package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream call outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeClientError = "http_4xx"
	OutcomeServerError = "http_5xx"
	OutcomeError       = "error"
	OutcomeCircuitOpen = "circuit_open"
)

var (
	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swapnet_gateway_upstream_requests_total",
		Help: "Upstream service calls by client and outcome.",
	}, []string{"client", "outcome"})

	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "swapnet_gateway_upstream_latency_seconds",
		Help:    "Upstream service call latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"client"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "swapnet_gateway_http_requests_total",
		Help: "Gateway HTTP requests by method and status code.",
	}, []string{"method", "status"})

	// StationSlots is refreshed on every slot view fetch.
	StationSlots = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "swapnet_gateway_station_slots",
		Help: "Slots per station by availability as of the last fetch.",
	}, []string{"station_id", "availability"})

	BreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "swapnet_gateway_breaker_state",
		Help: "Circuit breaker state per upstream (0 closed, 1 half-open, 2 open).",
	}, []string{"name"})
)

// OutcomeForStatus classifies an upstream HTTP status code.
func OutcomeForStatus(status int) string {
	switch {
	case status >= 500:
		return OutcomeServerError
	case status >= 400:
		return OutcomeClientError
	default:
		return OutcomeOK
	}
}

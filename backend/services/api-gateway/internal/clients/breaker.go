package clients

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"swapnet/backend/services/api-gateway/internal/metrics"
)

// ErrCircuitOpen is returned while an upstream is considered down.
var ErrCircuitOpen = errors.New("clients: circuit open")

var errServerStatus = errors.New("clients: upstream server error")

// BreakerSettings configures BreakerDoer.
type BreakerSettings struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// BreakerDoer fails fast when an upstream keeps failing. Transport errors
// and 5xx responses count as failures; 5xx responses are still returned to
// the caller. Requests are never retried.
type BreakerDoer struct {
	next    HTTPDoer
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerDoer wraps next with a circuit breaker.
func NewBreakerDoer(next HTTPDoer, settings BreakerSettings, logger *zap.Logger) *BreakerDoer {
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	metrics.BreakerState.WithLabelValues(settings.Name).Set(float64(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.BreakerState.WithLabelValues(name).Set(float64(to))
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &BreakerDoer{next: next, breaker: cb}
}

// Do implements HTTPDoer.
func (d *BreakerDoer) Do(req *http.Request) (*http.Response, error) {
	result, err := d.breaker.Execute(func() (interface{}, error) {
		resp, err := d.next.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})

	resp, _ := result.(*http.Response)
	switch {
	case err == nil:
		return resp, nil
	case errors.Is(err, errServerStatus) && resp != nil:
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, d.breaker.Name())
	default:
		return nil, err
	}
}

// State exposes the breaker state.
func (d *BreakerDoer) State() gobreaker.State {
	return d.breaker.State()
}

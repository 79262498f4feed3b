package clients

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type scriptedDoer struct {
	calls  int
	status int
	err    error
}

func (d *scriptedDoer) Do(*http.Request) (*http.Response, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{
		StatusCode: d.status,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}, nil
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "http://stations.local/stations", nil)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return req
}

func TestBreakerOpensAfterConsecutiveServerErrors(t *testing.T) {
	next := &scriptedDoer{status: http.StatusBadGateway}
	doer := NewBreakerDoer(next, BreakerSettings{Name: "test-5xx", FailureThreshold: 2}, zap.NewNop())

	for i := 0; i < 2; i++ {
		resp, err := doer.Do(newRequest(t))
		if err != nil {
			t.Fatalf("call %d: 5xx must be passed through, got %v", i, err)
		}
		if resp.StatusCode != http.StatusBadGateway {
			t.Fatalf("call %d: unexpected status %d", i, resp.StatusCode)
		}
		resp.Body.Close()
	}

	if _, err := doer.Do(newRequest(t)); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("open breaker must not call upstream, got %d calls", next.calls)
	}
}

func TestBreakerIgnoresClientErrors(t *testing.T) {
	next := &scriptedDoer{status: http.StatusNotFound}
	doer := NewBreakerDoer(next, BreakerSettings{Name: "test-4xx", FailureThreshold: 1}, zap.NewNop())

	for i := 0; i < 3; i++ {
		resp, err := doer.Do(newRequest(t))
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		resp.Body.Close()
	}
	if next.calls != 3 {
		t.Fatalf("expected 3 upstream calls, got %d", next.calls)
	}
}

func TestBreakerCountsTransportErrors(t *testing.T) {
	next := &scriptedDoer{err: errors.New("connection refused")}
	doer := NewBreakerDoer(next, BreakerSettings{Name: "test-transport", FailureThreshold: 1}, zap.NewNop())

	if _, err := doer.Do(newRequest(t)); err == nil || errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if _, err := doer.Do(newRequest(t)); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

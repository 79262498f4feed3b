package clients

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"swapnet/backend/services/api-gateway/internal/metrics"
)

// ErrUpstreamStatus wraps unexpected upstream status codes.
var ErrUpstreamStatus = errors.New("clients: unexpected upstream status")

// HTTPDoer defines http.Client interface subset.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// BaseClient performs requests against one upstream service.
type BaseClient struct {
	name    string
	baseURL string
	client  HTTPDoer
}

// NewBaseClient builds client with base URL. name labels metrics.
func NewBaseClient(name, baseURL string, client HTTPDoer) *BaseClient {
	return &BaseClient{
		name:    name,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *BaseClient) buildURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// Do executes HTTP request and returns status/body.
func (c *BaseClient) Do(ctx context.Context, method, path string, body []byte, headers map[string]string) (int, []byte, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path), reader)
	if err != nil {
		return 0, nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.client.Do(req)
	metrics.UpstreamLatency.WithLabelValues(c.name).Observe(time.Since(started).Seconds())
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, ErrCircuitOpen) {
			outcome = metrics.OutcomeCircuitOpen
		}
		metrics.UpstreamRequests.WithLabelValues(c.name, outcome).Inc()
		return 0, nil, err
	}
	defer resp.Body.Close()
	metrics.UpstreamRequests.WithLabelValues(c.name, metrics.OutcomeForStatus(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// NewDefaultHTTPClient returns *http.Client with timeout.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

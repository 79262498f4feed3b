package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"swapnet/backend/libs/pinslot"
)

var (
	ErrUnauthorized = errors.New("api: unauthorized")
	ErrNotFound     = errors.New("api: station not found")
	ErrStatus       = errors.New("api: unexpected gateway status")
)

// HTTPDoer defines http.Client interface subset.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the api-gateway on behalf of one user.
type Client struct {
	baseURL string
	token   string
	http    HTTPDoer
}

// NewClient returns a gateway client. token may be empty.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return NewClientWithDoer(baseURL, token, &http.Client{Timeout: timeout})
}

// NewClientWithDoer is NewClient with a custom transport.
func NewClientWithDoer(baseURL, token string, doer HTTPDoer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
		http:    doer,
	}
}

// FetchSlots loads the pin list of a station. Each call is a single
// request; callers decide when to refresh.
func (c *Client) FetchSlots(ctx context.Context, stationID int64) ([]pinslot.Slot, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/stations/%d/pins", stationID))
	if err != nil {
		return nil, err
	}
	var slots []pinslot.Slot
	if err := json.Unmarshal(body, &slots); err != nil {
		return nil, fmt.Errorf("api: decode pins: %w", err)
	}
	if slots == nil {
		slots = []pinslot.Slot{}
	}
	return slots, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %d %s", ErrStatus, resp.StatusCode, gatewayMessage(body))
	}
}

func gatewayMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}

package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swapnet/backend/libs/pinslot"
)

func TestFetchSlotsDecodesWireShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stations/7/pins" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"pinID":11,"pinPercent":100,"pinStatus":1,"pinHealth":97,"status":1,"userID":null,"stationID":7},
			{"pinID":12,"pinPercent":40,"pinStatus":0,"pinHealth":88,"status":2,"userID":501,"stationID":7}
		]`))
	}))
	defer srv.Close()

	client := NewStationsClient(srv.URL, NewDefaultHTTPClient(time.Second))
	slots, err := client.FetchSlots(context.Background(), 7)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if !pinslot.IsAvailable(slots[0]) {
		t.Fatalf("expected first slot bookable: %+v", slots[0])
	}
	if renter, ok := slots[1].Renter(); !ok || renter != 501 {
		t.Fatalf("expected renter 501, got %d %v", renter, ok)
	}
}

func TestFetchSlotsStatusMapping(t *testing.T) {
	status := http.StatusNotFound
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"x"}`))
	}))
	defer srv.Close()

	client := NewStationsClient(srv.URL, NewDefaultHTTPClient(time.Second))
	if _, err := client.FetchSlots(context.Background(), 1); !errors.Is(err, ErrStationNotFound) {
		t.Fatalf("expected ErrStationNotFound, got %v", err)
	}

	status = http.StatusInternalServerError
	if _, err := client.FetchSlots(context.Background(), 1); !errors.Is(err, ErrUpstreamStatus) {
		t.Fatalf("expected ErrUpstreamStatus, got %v", err)
	}
}

func TestFetchSlotsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	slots, err := NewStationsClient(srv.URL, NewDefaultHTTPClient(time.Second)).FetchSlots(context.Background(), 2)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if slots == nil || len(slots) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", slots)
	}
}

func TestTransactionsClientForwardsUserID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-User-ID"); got != "42" {
			t.Errorf("expected X-User-ID 42, got %q", got)
		}
		if got := r.URL.RawQuery; got != "" {
			t.Errorf("expected no query without a limit, got %q", got)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	status, body, err := NewTransactionsClient(srv.URL, NewDefaultHTTPClient(time.Second)).ListForUser(context.Background(), 42, 0)
	if err != nil || status != http.StatusOK || string(body) != "[]" {
		t.Fatalf("unexpected result %d %q %v", status, body, err)
	}
}

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetchSlotsSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stations/3/pins" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected authorization %q", got)
		}
		_, _ = w.Write([]byte(`[{"pinID":5,"pinPercent":100,"pinStatus":1,"pinHealth":90,"status":1,"userID":null,"stationID":3}]`))
	}))
	defer srv.Close()

	slots, err := NewClient(srv.URL+"/", " tok ", time.Second).FetchSlots(context.Background(), 3)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(slots) != 1 || slots[0].ID != 5 || slots[0].StationID != 3 {
		t.Fatalf("unexpected slots %+v", slots)
	}
}

func TestFetchSlotsErrors(t *testing.T) {
	status := http.StatusUnauthorized
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":"stations service unavailable"}`))
	}))
	defer srv.Close()
	client := NewClient(srv.URL, "", time.Second)

	if _, err := client.FetchSlots(context.Background(), 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	status = http.StatusNotFound
	if _, err := client.FetchSlots(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	status = http.StatusBadGateway
	_, err := client.FetchSlots(context.Background(), 1)
	if !errors.Is(err, ErrStatus) || !strings.Contains(err.Error(), "stations service unavailable") {
		t.Fatalf("expected ErrStatus with gateway message, got %v", err)
	}
}

package geocoder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"zapbytes/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(true, ""); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestReverseResolvesCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("missing format=json query param")
		}
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
			t.Errorf("missing coordinates in query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"address":{"city":"Delhi","state":"Delhi","country":"India"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(&Config{BaseURL: server.URL})
	location, err := client.Reverse(context.Background(), 28.7041, 77.1025)
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}

	if location.City != "Delhi" || location.State != "Delhi" || location.Country != "India" {
		t.Errorf("unexpected location: %+v", location)
	}
}

func TestReverseFallsBackToTownThenVillage(t *testing.T) {
	tests := []struct {
		name string
		body string
		city string
	}{
		{"town", `{"address":{"town":"Rohini","state":"Delhi","country":"India"}}`, "Rohini"},
		{"village", `{"address":{"village":"Khera Kalan","state":"Delhi","country":"India"}}`, "Khera Kalan"},
		{"empty", `{"address":{"state":"Delhi","country":"India"}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewHTTPClient(&Config{BaseURL: server.URL})
			location, err := client.Reverse(context.Background(), 28.7, 77.1)
			if err != nil {
				t.Fatalf("Reverse failed: %v", err)
			}
			if location.City != tt.city {
				t.Errorf("expected city %q, got %q", tt.city, location.City)
			}
		})
	}
}

func TestReverseErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewHTTPClient(&Config{BaseURL: server.URL})
	if _, err := client.Reverse(context.Background(), 28.7, 77.1); !errors.Is(err, ErrRequestFailed) {
		t.Errorf("expected ErrRequestFailed, got %v", err)
	}
}

func TestReverseNotConfigured(t *testing.T) {
	client := NewHTTPClient(&Config{})
	if _, err := client.Reverse(context.Background(), 28.7, 77.1); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}

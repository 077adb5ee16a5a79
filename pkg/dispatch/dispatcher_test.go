package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
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

func TestSendPostsPayloadWithoutHeaders(t *testing.T) {
	var gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	d := NewWebhookDispatcher(&Config{WebhookURL: server.URL})
	payload := &Payload{
		Name:      "Asha",
		Phone:     "919876543210",
		Pincode:   "110012",
		Source:    SourceLeadPopup,
		EventType: EventTypeLeadSubmit,
		City:      "Delhi",
	}

	if err := d.Send(context.Background(), payload); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// The sink accepts plain POSTs, nothing should set a content type
	if gotContentType != "" {
		t.Errorf("expected no Content-Type header, got %q", gotContentType)
	}

	var decoded map[string]string
	if err := json.Unmarshal(gotBody, &decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded["phone"] != "919876543210" {
		t.Errorf("unexpected phone: %q", decoded["phone"])
	}
	if decoded["source"] != SourceLeadPopup {
		t.Errorf("unexpected source: %q", decoded["source"])
	}
	if decoded["eventType"] != EventTypeLeadSubmit {
		t.Errorf("unexpected eventType: %q", decoded["eventType"])
	}
	// Absent fields serialize as empty strings, not omitted keys
	if _, ok := decoded["message"]; !ok {
		t.Error("expected message key with empty value")
	}
}

func TestSendTreatsAnyResponseAsDelivered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream error"))
	}))
	defer server.Close()

	d := NewWebhookDispatcher(&Config{WebhookURL: server.URL})
	if err := d.Send(context.Background(), &Payload{Source: SourceContactForm}); err != nil {
		t.Errorf("non-2xx response should still count as delivered: %v", err)
	}
}

func TestSendFailsWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	d := NewWebhookDispatcher(&Config{WebhookURL: server.URL})
	if err := d.Send(context.Background(), &Payload{Source: SourceLeadPopup}); !errors.Is(err, ErrSendFailed) {
		t.Errorf("expected ErrSendFailed, got %v", err)
	}
}

func TestSendRequiresWebhookURL(t *testing.T) {
	d := NewWebhookDispatcher(&Config{})
	if err := d.Send(context.Background(), &Payload{}); !errors.Is(err, ErrSinkNotConfigured) {
		t.Errorf("expected ErrSinkNotConfigured, got %v", err)
	}
}

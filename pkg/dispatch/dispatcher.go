package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"zapbytes/pkg/logger"

	"go.uber.org/zap"
)

// Source labels identifying which surface produced a submission
const (
	SourceLeadPopup        = "Get Started Popup"
	SourceContactForm      = "Contact Us Form"
	SourceLocationFallback = "Location Fallback"
)

// EventTypeLeadSubmit routes lead submissions on the sink side
const EventTypeLeadSubmit = "lead_submit"

// Payload is the flat record posted to the submission sink. Location
// fields default to empty strings when no cached location exists.
type Payload struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Pincode   string `json:"pincode"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Source    string `json:"source"`
	EventType string `json:"eventType"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// Dispatcher forwards submission payloads to the configured sink
type Dispatcher interface {
	Send(ctx context.Context, payload *Payload) error
}

// Config holds submission sink configuration
type Config struct {
	WebhookURL string
	Timeout    int // seconds
}

// WebhookDispatcher posts JSON payloads to a spreadsheet webhook.
// The sink accepts plain POSTs only, so no headers are set on the
// request. Any response that arrives counts as delivered; there are
// no retries.
type WebhookDispatcher struct {
	webhookURL string
	httpClient *http.Client
}

// NewWebhookDispatcher creates a webhook dispatcher
func NewWebhookDispatcher(config *Config) *WebhookDispatcher {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15
	}

	return &WebhookDispatcher{
		webhookURL: config.WebhookURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// Send posts the payload to the sink
func (d *WebhookDispatcher) Send(ctx context.Context, payload *Payload) error {
	if d.webhookURL == "" {
		return ErrSinkNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	// The sink responds with opaque text, keep it in the logs for
	// diagnostics but treat every response as success.
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	logger.FromContext(ctx).Info("Submission delivered",
		zap.String("source", payload.Source),
		zap.String("event_type", payload.EventType),
		zap.Int("status", resp.StatusCode),
		zap.String("response", string(raw)))

	return nil
}

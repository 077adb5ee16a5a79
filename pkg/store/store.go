package store

import (
	"context"
	"errors"
	"time"
)

// Cache keys for visitor session state
const (
	KeyUserLocation     = "user_location"
	KeyLeadSubmitted    = "lead_submitted"
	KeyContactSubmitted = "contact_submitted"
	KeyCTADismissed     = "cta_dismissed"
	KeyFallbackSent     = "fallback_sent"
)

// Error variables
var (
	ErrNotFound = errors.New("entry not found")
)

// Store is a per-visitor key-value cache. Values are JSON text.
type Store interface {
	// Get returns the value for a visitor key, or ErrNotFound.
	Get(ctx context.Context, visitorID, key string) (string, error)

	// Set writes a value for a visitor key, overwriting any existing entry.
	Set(ctx context.Context, visitorID, key, value string) error

	// Has reports whether an entry exists for the visitor key.
	Has(ctx context.Context, visitorID, key string) (bool, error)

	// Delete removes an entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, visitorID, key string) error

	// StaleVisitors returns visitor IDs whose entry under key was written
	// before the given time.
	StaleVisitors(ctx context.Context, key string, olderThan time.Time) ([]string, error)
}

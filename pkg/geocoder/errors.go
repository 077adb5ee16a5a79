package geocoder

import "errors"

// Geocoder error definitions using sentinel errors pattern
var (
	ErrRequestFailed   = errors.New("reverse geocoding request failed")
	ErrInvalidResponse = errors.New("invalid reverse geocoding response")
	ErrNotConfigured   = errors.New("geocoder endpoint not configured")
)

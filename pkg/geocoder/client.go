package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"zapbytes/pkg/logger"

	"go.uber.org/zap"
)

// Location is a resolved place name for a coordinate pair
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Client resolves coordinates to place names
type Client interface {
	Reverse(ctx context.Context, lat, lon float64) (*Location, error)
}

// Config holds reverse geocoding client configuration
type Config struct {
	BaseURL string
	Timeout int // seconds
}

// HTTPClient is a Nominatim-style reverse geocoding client
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// reverseResponse mirrors the address section of a Nominatim reverse lookup
type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

// NewHTTPClient creates a reverse geocoding client
func NewHTTPClient(config *Config) *HTTPClient {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 10
	}

	return &HTTPClient{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// Reverse resolves a coordinate pair to city/state/country.
// Missing address fields resolve to empty strings.
func (c *HTTPClient) Reverse(ctx context.Context, lat, lon float64) (*Location, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("format", "json")
	query.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var decoded reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	location := &Location{
		City:    decoded.Address.City,
		State:   decoded.Address.State,
		Country: decoded.Address.Country,
	}

	// City granularity varies by area, fall back to town then village
	if location.City == "" {
		location.City = decoded.Address.Town
	}
	if location.City == "" {
		location.City = decoded.Address.Village
	}

	logger.Debug("Reverse geocoding completed",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.String("city", location.City))

	return location, nil
}

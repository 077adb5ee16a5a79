package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"zapbytes/internal/models"
	"zapbytes/pkg/geocoder"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/store"

	"go.uber.org/zap"
)

// Service captures visitor geolocation opportunistically
type Service struct {
	store    store.Store
	geocoder geocoder.Client
}

// NewService creates a location capture service
func NewService(st store.Store, gc geocoder.Client) *Service {
	return &Service{
		store:    st,
		geocoder: gc,
	}
}

// Capture resolves and caches the visitor location. An already cached
// record short-circuits and is returned unchanged, so a session's
// location is resolved at most once and never overwritten. On lookup
// failure nothing is cached and the error is surfaced to the caller.
func (s *Service) Capture(ctx context.Context, visitorID string, lat, lon float64) (*models.LocationRecord, bool, error) {
	log := logger.FromContext(ctx)

	if cached, err := s.Cached(ctx, visitorID); err == nil && cached != nil {
		log.Debug("Location already cached, skipping capture")
		return cached, false, nil
	}

	resolved, err := s.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		log.Warn("Reverse geocoding failed, location not cached", zap.Error(err))
		return nil, false, fmt.Errorf("failed to resolve location: %w", err)
	}

	record := &models.LocationRecord{
		Latitude:   lat,
		Longitude:  lon,
		City:       resolved.City,
		State:      resolved.State,
		Country:    resolved.Country,
		CapturedAt: time.Now().UTC(),
	}

	value, err := json.Marshal(record)
	if err != nil {
		return nil, false, fmt.Errorf("failed to marshal location record: %w", err)
	}

	if err := s.store.Set(ctx, visitorID, store.KeyUserLocation, string(value)); err != nil {
		return nil, false, fmt.Errorf("failed to cache location: %w", err)
	}

	log.Info("Location captured",
		zap.String("city", record.City),
		zap.String("state", record.State),
		zap.String("country", record.Country))

	return record, true, nil
}

// Cached returns the cached location record, or nil when absent
func (s *Service) Cached(ctx context.Context, visitorID string) (*models.LocationRecord, error) {
	value, err := s.store.Get(ctx, visitorID, store.KeyUserLocation)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached location: %w", err)
	}

	var record models.LocationRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, fmt.Errorf("failed to decode cached location: %w", err)
	}

	return &record, nil
}

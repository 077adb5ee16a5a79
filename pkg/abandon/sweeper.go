package abandon

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"zapbytes/internal/models"
	"zapbytes/pkg/dispatch"
	"zapbytes/pkg/location"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/store"

	"go.uber.org/zap"
)

// Service sends the best-effort location-only fallback for visitors
// who granted location but never converted.
type Service struct {
	store      store.Store
	dispatcher dispatch.Dispatcher
	location   *location.Service
	sessionTTL time.Duration
}

// NewService creates an abandonment fallback service. sessionTTL bounds
// how long a session without an unload beacon stays eligible for the
// scheduled sweep.
func NewService(st store.Store, d dispatch.Dispatcher, loc *location.Service, sessionTTL time.Duration) *Service {
	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}

	return &Service{
		store:      st,
		dispatcher: d,
		location:   loc,
		sessionTTL: sessionTTL,
	}
}

// CloseSession handles the page-unload beacon. When a location is
// cached and the session produced no submission, the location-only
// record is fired once in the background with no completion guarantee.
func (s *Service) CloseSession(ctx context.Context, visitorID string) (bool, error) {
	eligible, record, err := s.eligible(ctx, visitorID)
	if err != nil {
		return false, err
	}
	if !eligible {
		return false, nil
	}

	if err := s.markSent(ctx, visitorID); err != nil {
		return false, err
	}

	// Fire and forget, the session is already gone. WithoutCancel keeps
	// the logger identity values while detaching from the beacon request
	// lifetime.
	go s.send(context.WithoutCancel(ctx), record)

	return true, nil
}

// Sweep applies the fallback guard to sessions whose cached location
// outlived the session TTL without an unload beacon.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.sessionTTL)
	visitors, err := s.store.StaleVisitors(ctx, store.KeyUserLocation, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to scan stale sessions: %w", err)
	}

	sent := 0
	for _, visitorID := range visitors {
		// No middleware ran here, so attach the visitor identity to the
		// context ourselves before anything below logs.
		visitorCtx := logger.WithVisitorID(ctx, visitorID)

		eligible, record, err := s.eligible(visitorCtx, visitorID)
		if err != nil {
			logger.FromContext(visitorCtx).Warn("Skipping visitor during sweep", zap.Error(err))
			continue
		}
		if !eligible {
			continue
		}

		if err := s.markSent(visitorCtx, visitorID); err != nil {
			logger.FromContext(visitorCtx).Warn("Failed to mark fallback sent", zap.Error(err))
			continue
		}

		s.send(visitorCtx, record)
		sent++
	}

	if sent > 0 {
		logger.Info("Abandonment sweep completed",
			zap.Int("scanned", len(visitors)),
			zap.Int("sent", sent))
	}

	return sent, nil
}

// eligible checks the fallback guard: a cached location and none of the
// submission or fallback markers.
func (s *Service) eligible(ctx context.Context, visitorID string) (bool, *models.LocationRecord, error) {
	record, err := s.location.Cached(ctx, visitorID)
	if err != nil {
		return false, nil, err
	}
	if record == nil {
		return false, nil, nil
	}

	for _, key := range []string{store.KeyLeadSubmitted, store.KeyContactSubmitted, store.KeyFallbackSent} {
		set, err := s.store.Has(ctx, visitorID, key)
		if err != nil {
			return false, nil, fmt.Errorf("failed to check marker %s: %w", key, err)
		}
		if set {
			return false, nil, nil
		}
	}

	return true, record, nil
}

// markSent sets the fallback marker before dispatch so concurrent close
// and sweep paths cannot both fire.
func (s *Service) markSent(ctx context.Context, visitorID string) error {
	value, _ := json.Marshal(models.Marker{At: time.Now().UTC()})
	return s.store.Set(ctx, visitorID, store.KeyFallbackSent, string(value))
}

// send dispatches the location-only payload. Failures are logged only,
// the fallback is best effort.
func (s *Service) send(ctx context.Context, record *models.LocationRecord) {
	ctx = logger.WithSource(ctx, dispatch.SourceLocationFallback)
	log := logger.FromContext(ctx)

	payload := &dispatch.Payload{
		Source:    dispatch.SourceLocationFallback,
		City:      record.City,
		State:     record.State,
		Country:   record.Country,
		Latitude:  strconv.FormatFloat(record.Latitude, 'f', -1, 64),
		Longitude: strconv.FormatFloat(record.Longitude, 'f', -1, 64),
	}

	if err := s.dispatcher.Send(ctx, payload); err != nil {
		log.Warn("Location fallback delivery failed", zap.Error(err))
		return
	}

	log.Info("Location fallback sent")
}

package location

import (
	"context"
	"errors"
	"os"
	"testing"

	"zapbytes/pkg/geocoder"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/store"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(true, ""); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type fakeGeocoder struct {
	location *geocoder.Location
	err      error
	calls    int
}

func (f *fakeGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geocoder.Location, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.location, nil
}

func TestCaptureResolvesAndCaches(t *testing.T) {
	st := store.NewMemoryStore()
	gc := &fakeGeocoder{location: &geocoder.Location{City: "Delhi", State: "Delhi", Country: "India"}}
	svc := NewService(st, gc)
	ctx := context.Background()

	record, created, err := svc.Capture(ctx, "v1", 28.7041, 77.1025)
	if err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if !created {
		t.Error("expected a new record on first capture")
	}
	if record.City != "Delhi" || record.Latitude != 28.7041 {
		t.Errorf("unexpected record: %+v", record)
	}

	if ok, _ := st.Has(ctx, "v1", store.KeyUserLocation); !ok {
		t.Error("location not cached")
	}
}

func TestCaptureIsIdempotent(t *testing.T) {
	st := store.NewMemoryStore()
	gc := &fakeGeocoder{location: &geocoder.Location{City: "Delhi", State: "Delhi", Country: "India"}}
	svc := NewService(st, gc)
	ctx := context.Background()

	if _, _, err := svc.Capture(ctx, "v1", 28.7041, 77.1025); err != nil {
		t.Fatalf("first Capture failed: %v", err)
	}

	// A second capture with different coordinates must not overwrite
	record, created, err := svc.Capture(ctx, "v1", 19.0760, 72.8777)
	if err != nil {
		t.Fatalf("second Capture failed: %v", err)
	}
	if created {
		t.Error("cached record must not be overwritten")
	}
	if record.Latitude != 28.7041 {
		t.Errorf("cached record changed: %+v", record)
	}
	if gc.calls != 1 {
		t.Errorf("expected a single geocoder call, got %d", gc.calls)
	}
}

func TestCaptureLookupFailureCachesNothing(t *testing.T) {
	st := store.NewMemoryStore()
	gc := &fakeGeocoder{err: geocoder.ErrRequestFailed}
	svc := NewService(st, gc)
	ctx := context.Background()

	if _, _, err := svc.Capture(ctx, "v1", 28.7041, 77.1025); !errors.Is(err, geocoder.ErrRequestFailed) {
		t.Fatalf("expected lookup error, got %v", err)
	}

	if ok, _ := st.Has(ctx, "v1", store.KeyUserLocation); ok {
		t.Error("failed lookup must not cache a record")
	}

	// A later successful grant still resolves
	gc.err = nil
	gc.location = &geocoder.Location{City: "Delhi"}
	if _, created, err := svc.Capture(ctx, "v1", 28.7041, 77.1025); err != nil || !created {
		t.Errorf("expected capture after recovery, created=%v err=%v", created, err)
	}
}

func TestCachedReturnsNilWhenAbsent(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), &fakeGeocoder{})

	record, err := svc.Cached(context.Background(), "v1")
	if err != nil {
		t.Fatalf("Cached failed: %v", err)
	}
	if record != nil {
		t.Errorf("expected nil record, got %+v", record)
	}
}

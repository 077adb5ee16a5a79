package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "v1", KeyUserLocation); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "v1", KeyUserLocation, `{"city":"Delhi"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, err := s.Get(ctx, "v1", KeyUserLocation)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != `{"city":"Delhi"}` {
		t.Errorf("unexpected value: %s", value)
	}

	// Other visitors must not see the entry
	if ok, _ := s.Has(ctx, "v2", KeyUserLocation); ok {
		t.Error("entry leaked across visitors")
	}
}

func TestMemoryStoreHasDelete(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "v1", KeyLeadSubmitted, `{"at":"2026-01-01T00:00:00Z"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	ok, err := s.Has(ctx, "v1", KeyLeadSubmitted)
	if err != nil || !ok {
		t.Fatalf("expected entry present, ok=%v err=%v", ok, err)
	}

	if err := s.Delete(ctx, "v1", KeyLeadSubmitted); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if ok, _ := s.Has(ctx, "v1", KeyLeadSubmitted); ok {
		t.Error("entry still present after delete")
	}

	// Deleting a missing entry is not an error
	if err := s.Delete(ctx, "v1", KeyLeadSubmitted); err != nil {
		t.Errorf("delete of missing entry failed: %v", err)
	}
}

func TestMemoryStoreStaleVisitors(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "old", KeyUserLocation, `{}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	ids, err := s.StaleVisitors(ctx, KeyUserLocation, time.Now().Add(time.Minute))
	if err != nil {
		t.Fatalf("StaleVisitors failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "old" {
		t.Errorf("unexpected stale visitors: %v", ids)
	}

	// Nothing is stale against a cutoff in the past
	ids, err = s.StaleVisitors(ctx, KeyUserLocation, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("StaleVisitors failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no stale visitors, got %v", ids)
	}
}

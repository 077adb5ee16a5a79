package logger

import (
	"context"
	"os"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	if err := InitLogger(true, ""); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestFromContextCarriesIdentityFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	original := Logger
	Logger = zap.New(core)
	defer func() { Logger = original }()

	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithVisitorID(ctx, "v1")
	ctx = WithSource(ctx, "Get Started Popup")

	FromContext(ctx).Info("captured")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-1" {
		t.Errorf("expected request_id req-1, got %v", fields["request_id"])
	}
	if fields["visitor_id"] != "v1" {
		t.Errorf("expected visitor_id v1, got %v", fields["visitor_id"])
	}
	if fields["source"] != "Get Started Popup" {
		t.Errorf("expected source field, got %v", fields["source"])
	}
}

func TestFromContextWithoutValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	original := Logger
	Logger = zap.New(core)
	defer func() { Logger = original }()

	FromContext(context.Background()).Info("bare")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if len(entries[0].Context) != 0 {
		t.Errorf("expected no identity fields, got %v", entries[0].ContextMap())
	}
}

func TestValuesSurviveDetachedContext(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	original := Logger
	Logger = zap.New(core)
	defer func() { Logger = original }()

	// The fallback send detaches from the request lifetime but must keep
	// logging under the visitor identity.
	ctx := WithVisitorID(context.Background(), "v1")
	FromContext(context.WithoutCancel(ctx)).Info("detached")

	fields := logs.All()[0].ContextMap()
	if fields["visitor_id"] != "v1" {
		t.Errorf("expected visitor_id to survive detaching, got %v", fields["visitor_id"])
	}
}

func TestLogLevelRoundTrip(t *testing.T) {
	previous := GetLogLevel()
	defer SetLogLevel(previous)

	if err := SetLogLevel("error"); err != nil {
		t.Fatalf("SetLogLevel failed: %v", err)
	}
	if got := GetLogLevel(); got != "error" {
		t.Errorf("expected level error, got %s", got)
	}

	if err := SetLogLevel("verbose"); err == nil {
		t.Error("expected an error for an unknown level")
	}
	if got := GetLogLevel(); got != "error" {
		t.Errorf("failed change must leave the level alone, got %s", got)
	}
}

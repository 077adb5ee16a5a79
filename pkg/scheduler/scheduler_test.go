package scheduler

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"zapbytes/pkg/abandon"
	"zapbytes/pkg/config"
	"zapbytes/pkg/dispatch"
	"zapbytes/pkg/geocoder"
	"zapbytes/pkg/location"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/store"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(true, ""); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type noopDispatcher struct{}

func (noopDispatcher) Send(ctx context.Context, payload *dispatch.Payload) error {
	return nil
}

type noopGeocoder struct{}

func (noopGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geocoder.Location, error) {
	return &geocoder.Location{}, nil
}

func newTestScheduler(t *testing.T) *TaskScheduler {
	t.Helper()

	cfg, err := config.LoadConfig("nonexistent.yaml")
	if err != nil {
		t.Fatalf("loading defaults failed: %v", err)
	}

	st := store.NewMemoryStore()
	sweeper := abandon.NewService(st, noopDispatcher{}, location.NewService(st, noopGeocoder{}), time.Minute)

	ts, err := NewTaskScheduler(context.Background(), cfg, sweeper)
	if err != nil {
		t.Fatalf("NewTaskScheduler failed: %v", err)
	}
	return ts
}

func TestAddAndGetJob(t *testing.T) {
	ts := newTestScheduler(t)

	job := &ScheduledJob{
		Name: "manual_sweep",
		Type: config.JobTypeAbandonmentSweep,
		Cron: "*/5 * * * *",
	}
	if err := ts.AddJob(job); err != nil {
		t.Fatalf("AddJob failed: %v", err)
	}
	if job.ID == "" {
		t.Fatal("AddJob should assign an ID")
	}
	if job.Status != JobStatusScheduled {
		t.Errorf("expected status %s, got %s", JobStatusScheduled, job.Status)
	}

	got, err := ts.GetJob(job.ID)
	if err != nil {
		t.Fatalf("GetJob failed: %v", err)
	}
	if got.Name != "manual_sweep" {
		t.Errorf("unexpected job name %q", got.Name)
	}

	found := false
	for _, j := range ts.GetJobs() {
		if j.ID == job.ID {
			found = true
		}
	}
	if !found {
		t.Error("GetJobs does not list the added job")
	}
}

func TestGetJobUnknownID(t *testing.T) {
	ts := newTestScheduler(t)

	if _, err := ts.GetJob("missing"); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound, got %v", err)
	}
}

func TestRemoveJob(t *testing.T) {
	ts := newTestScheduler(t)

	job := &ScheduledJob{
		Name: "manual_sweep",
		Type: config.JobTypeAbandonmentSweep,
		Cron: "*/5 * * * *",
	}
	if err := ts.AddJob(job); err != nil {
		t.Fatalf("AddJob failed: %v", err)
	}

	if err := ts.RemoveJob(job.ID); err != nil {
		t.Fatalf("RemoveJob failed: %v", err)
	}
	if _, err := ts.GetJob(job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("removed job still resolvable, err=%v", err)
	}
	if err := ts.RemoveJob(job.ID); !errors.Is(err, ErrJobNotFound) {
		t.Errorf("expected ErrJobNotFound on repeat removal, got %v", err)
	}
}

func TestAddJobUnknownType(t *testing.T) {
	ts := newTestScheduler(t)

	job := &ScheduledJob{
		Name: "mystery",
		Type: "mystery_job",
		Cron: "*/5 * * * *",
	}
	if err := ts.AddJob(job); !errors.Is(err, ErrUnknownJobType) {
		t.Errorf("expected ErrUnknownJobType, got %v", err)
	}
}

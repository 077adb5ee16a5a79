package leads

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"zapbytes/internal/models"
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

type recordingDispatcher struct {
	payloads []*dispatch.Payload
	err      error
}

func (d *recordingDispatcher) Send(ctx context.Context, payload *dispatch.Payload) error {
	if d.err != nil {
		return d.err
	}
	d.payloads = append(d.payloads, payload)
	return nil
}

type noopGeocoder struct{}

func (noopGeocoder) Reverse(ctx context.Context, lat, lon float64) (*geocoder.Location, error) {
	return &geocoder.Location{}, nil
}

func newTestService(st store.Store, d dispatch.Dispatcher) *Service {
	return NewService(st, d, location.NewService(st, noopGeocoder{}), NewServiceArea(nil))
}

func validLead() *LeadRequest {
	return &LeadRequest{
		Name:    "Asha Verma",
		Phone:   "9876543210",
		Pincode: "110012",
		Consent: true,
	}
}

func TestSubmitLeadWithoutConsentSendsNothing(t *testing.T) {
	d := &recordingDispatcher{}
	svc := newTestService(store.NewMemoryStore(), d)

	req := validLead()
	req.Consent = false

	if _, err := svc.SubmitLead(context.Background(), "v1", req); !errors.Is(err, ErrConsentRequired) {
		t.Fatalf("expected ErrConsentRequired, got %v", err)
	}
	if len(d.payloads) != 0 {
		t.Errorf("consentless submission reached the sink: %d payloads", len(d.payloads))
	}
}

func TestSubmitLeadNormalizesPhone(t *testing.T) {
	d := &recordingDispatcher{}
	svc := newTestService(store.NewMemoryStore(), d)

	req := validLead()
	req.Phone = "98765-43210"

	if _, err := svc.SubmitLead(context.Background(), "v1", req); err != nil {
		t.Fatalf("SubmitLead failed: %v", err)
	}
	if d.payloads[0].Phone != "919876543210" {
		t.Errorf("unexpected phone: %q", d.payloads[0].Phone)
	}
	if d.payloads[0].Source != dispatch.SourceLeadPopup {
		t.Errorf("unexpected source: %q", d.payloads[0].Source)
	}
	if d.payloads[0].EventType != dispatch.EventTypeLeadSubmit {
		t.Errorf("unexpected eventType: %q", d.payloads[0].EventType)
	}
}

func TestSubmitLeadFeasibilitySelectsMessageOnly(t *testing.T) {
	d := &recordingDispatcher{}
	svc := newTestService(store.NewMemoryStore(), d)
	ctx := context.Background()

	feasible, err := svc.SubmitLead(ctx, "v1", validLead())
	if err != nil {
		t.Fatalf("feasible SubmitLead failed: %v", err)
	}
	if !feasible.Feasible || feasible.Message != MessageFeasible {
		t.Errorf("unexpected feasible result: %+v", feasible)
	}

	out := validLead()
	out.Pincode = "400001"
	infeasible, err := svc.SubmitLead(ctx, "v2", out)
	if err != nil {
		t.Fatalf("infeasible SubmitLead failed: %v", err)
	}
	if infeasible.Feasible || infeasible.Message != MessageInfeasible {
		t.Errorf("unexpected infeasible result: %+v", infeasible)
	}

	// Both records reach the sink with identical shape
	if len(d.payloads) != 2 {
		t.Fatalf("expected 2 payloads, got %d", len(d.payloads))
	}
	a, _ := json.Marshal(d.payloads[0])
	b, _ := json.Marshal(d.payloads[1])
	var fieldsA, fieldsB map[string]string
	json.Unmarshal(a, &fieldsA)
	json.Unmarshal(b, &fieldsB)
	if len(fieldsA) != len(fieldsB) {
		t.Errorf("payload shape differs between feasible and infeasible submissions")
	}
}

func TestSubmitLeadMergesCachedLocation(t *testing.T) {
	st := store.NewMemoryStore()
	d := &recordingDispatcher{}
	svc := newTestService(st, d)
	ctx := context.Background()

	record := models.LocationRecord{
		Latitude:   28.7041,
		Longitude:  77.1025,
		City:       "Delhi",
		State:      "Delhi",
		Country:    "India",
		CapturedAt: time.Now().UTC(),
	}
	value, _ := json.Marshal(record)
	if err := st.Set(ctx, "v1", store.KeyUserLocation, string(value)); err != nil {
		t.Fatalf("seeding location failed: %v", err)
	}

	if _, err := svc.SubmitLead(ctx, "v1", validLead()); err != nil {
		t.Fatalf("SubmitLead failed: %v", err)
	}

	got := d.payloads[0]
	if got.City != "Delhi" || got.State != "Delhi" || got.Country != "India" {
		t.Errorf("location not merged: %+v", got)
	}
	if got.Latitude != "28.7041" || got.Longitude != "77.1025" {
		t.Errorf("coordinates not merged: lat=%q lon=%q", got.Latitude, got.Longitude)
	}
}

func TestSubmitLeadWithoutLocationLeavesEmptyFields(t *testing.T) {
	d := &recordingDispatcher{}
	svc := newTestService(store.NewMemoryStore(), d)

	if _, err := svc.SubmitLead(context.Background(), "v1", validLead()); err != nil {
		t.Fatalf("SubmitLead failed: %v", err)
	}

	got := d.payloads[0]
	if got.City != "" || got.Latitude != "" {
		t.Errorf("expected empty location fields, got %+v", got)
	}
}

func TestSubmitLeadSetsMarkerOnSuccessOnly(t *testing.T) {
	st := store.NewMemoryStore()
	d := &recordingDispatcher{err: dispatch.ErrSendFailed}
	svc := newTestService(st, d)
	ctx := context.Background()

	if _, err := svc.SubmitLead(ctx, "v1", validLead()); !errors.Is(err, dispatch.ErrSendFailed) {
		t.Fatalf("expected dispatch error, got %v", err)
	}
	if ok, _ := st.Has(ctx, "v1", store.KeyLeadSubmitted); ok {
		t.Error("marker set despite dispatch failure")
	}

	d.err = nil
	if _, err := svc.SubmitLead(ctx, "v1", validLead()); err != nil {
		t.Fatalf("SubmitLead failed: %v", err)
	}
	if ok, _ := st.Has(ctx, "v1", store.KeyLeadSubmitted); !ok {
		t.Error("marker not set after successful dispatch")
	}
}

func TestSubmitLeadValidation(t *testing.T) {
	svc := newTestService(store.NewMemoryStore(), &recordingDispatcher{})
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*LeadRequest)
		want   error
	}{
		{"empty name", func(r *LeadRequest) { r.Name = "  " }, ErrNameRequired},
		{"bad phone", func(r *LeadRequest) { r.Phone = "12345" }, ErrInvalidPhone},
		{"bad pincode", func(r *LeadRequest) { r.Pincode = "1100" }, ErrInvalidPincode},
		{"bad email", func(r *LeadRequest) { r.Email = "nope" }, ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validLead()
			tt.mutate(req)
			if _, err := svc.SubmitLead(ctx, "v1", req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	// Email is optional for leads
	req := validLead()
	req.Email = ""
	if _, err := svc.SubmitLead(ctx, "v1", req); err != nil {
		t.Errorf("empty email should be accepted: %v", err)
	}
}

func TestSubmitContact(t *testing.T) {
	st := store.NewMemoryStore()
	d := &recordingDispatcher{}
	svc := newTestService(st, d)
	ctx := context.Background()

	req := &ContactRequest{
		Name:    "Asha Verma",
		Email:   "asha@example.in",
		Phone:   "9876543210",
		Message: "Need a connection in Rohini Sector 9",
	}

	result, err := svc.SubmitContact(ctx, "v1", req)
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if result.Message != MessageContact {
		t.Errorf("unexpected message: %q", result.Message)
	}

	got := d.payloads[0]
	if got.Source != dispatch.SourceContactForm {
		t.Errorf("unexpected source: %q", got.Source)
	}
	if got.EventType != "" {
		t.Errorf("contact payload should carry no eventType, got %q", got.EventType)
	}
	if got.Pincode != "" {
		t.Errorf("contact payload should carry no pincode, got %q", got.Pincode)
	}
	if ok, _ := st.Has(ctx, "v1", store.KeyContactSubmitted); !ok {
		t.Error("contact marker not set")
	}
}

func TestSubmitContactValidation(t *testing.T) {
	svc := newTestService(store.NewMemoryStore(), &recordingDispatcher{})
	ctx := context.Background()

	base := func() *ContactRequest {
		return &ContactRequest{
			Name:    "Asha",
			Email:   "asha@example.in",
			Phone:   "9876543210",
			Message: "hello",
		}
	}

	tests := []struct {
		name   string
		mutate func(*ContactRequest)
		want   error
	}{
		{"empty name", func(r *ContactRequest) { r.Name = "" }, ErrNameRequired},
		{"missing email", func(r *ContactRequest) { r.Email = "" }, ErrInvalidEmail},
		{"bad phone", func(r *ContactRequest) { r.Phone = "12" }, ErrInvalidPhone},
		{"empty message", func(r *ContactRequest) { r.Message = " " }, ErrMessageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			if _, err := svc.SubmitContact(ctx, "v1", req); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

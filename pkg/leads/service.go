package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"zapbytes/internal/models"
	"zapbytes/pkg/dispatch"
	"zapbytes/pkg/location"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/store"

	"go.uber.org/zap"
)

// Confirmation messages shown after a successful submission
const (
	MessageFeasible   = "Thank You! Our team will contact you within 24 hours."
	MessageInfeasible = "Thank You! We are expanding rapidly and will notify you as soon as our network reaches your area."
	MessageContact    = "Message Sent!"
)

// LeadRequest is a lead form submission
type LeadRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Pincode string `json:"pincode"`
	Email   string `json:"email"`
	Consent bool   `json:"consent"`
}

// ContactRequest is a contact form submission
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SubmissionResult carries the outcome shown to the visitor
type SubmissionResult struct {
	Feasible bool   `json:"feasible"`
	Message  string `json:"message"`
}

// Service validates and forwards lead and contact submissions
type Service struct {
	store      store.Store
	dispatcher dispatch.Dispatcher
	location   *location.Service
	area       *ServiceArea
}

// NewService creates a lead capture service
func NewService(st store.Store, d dispatch.Dispatcher, loc *location.Service, area *ServiceArea) *Service {
	return &Service{
		store:      st,
		dispatcher: d,
		location:   loc,
		area:       area,
	}
}

// SubmitLead validates a lead form submission, merges the cached
// location, and forwards the record to the sink. Consent gates the
// whole operation, nothing leaves the service without it. The record
// is dispatched whether or not the pincode is serviceable, feasibility
// only selects the confirmation message.
func (s *Service) SubmitLead(ctx context.Context, visitorID string, req *LeadRequest) (*SubmissionResult, error) {
	if !req.Consent {
		return nil, ErrConsentRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if err := ValidatePincode(req.Pincode); err != nil {
		return nil, err
	}
	if req.Email != "" {
		if err := ValidateEmail(req.Email); err != nil {
			return nil, err
		}
	}

	ctx = logger.WithSource(ctx, dispatch.SourceLeadPopup)
	log := logger.FromContext(ctx)

	payload := &dispatch.Payload{
		Name:      strings.TrimSpace(req.Name),
		Phone:     phone,
		Pincode:   req.Pincode,
		Email:     req.Email,
		Source:    dispatch.SourceLeadPopup,
		EventType: dispatch.EventTypeLeadSubmit,
	}
	s.mergeLocation(ctx, visitorID, payload)

	if err := s.dispatcher.Send(ctx, payload); err != nil {
		log.Error("Lead submission failed", zap.Error(err))
		return nil, fmt.Errorf("failed to submit lead: %w", err)
	}

	s.setMarker(ctx, visitorID, store.KeyLeadSubmitted)

	feasible := s.area.Feasible(req.Pincode)
	result := &SubmissionResult{Feasible: feasible, Message: MessageFeasible}
	if !feasible {
		result.Message = MessageInfeasible
	}

	log.Info("Lead submitted",
		zap.String("pincode", req.Pincode),
		zap.Bool("feasible", feasible))

	return result, nil
}

// SubmitContact validates a contact form submission and forwards it to
// the sink under the contact source label. No pincode or feasibility
// check applies here.
func (s *Service) SubmitContact(ctx context.Context, visitorID string, req *ContactRequest) (*SubmissionResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrMessageRequired
	}

	ctx = logger.WithSource(ctx, dispatch.SourceContactForm)
	log := logger.FromContext(ctx)

	payload := &dispatch.Payload{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Phone:   phone,
		Message: strings.TrimSpace(req.Message),
		Source:  dispatch.SourceContactForm,
	}

	if err := s.dispatcher.Send(ctx, payload); err != nil {
		log.Error("Contact submission failed", zap.Error(err))
		return nil, fmt.Errorf("failed to submit contact message: %w", err)
	}

	s.setMarker(ctx, visitorID, store.KeyContactSubmitted)

	log.Info("Contact message submitted")
	return &SubmissionResult{Message: MessageContact}, nil
}

// mergeLocation fills payload location fields from the cached record.
// Absent or unreadable cache leaves the empty-string defaults in place.
func (s *Service) mergeLocation(ctx context.Context, visitorID string, payload *dispatch.Payload) {
	record, err := s.location.Cached(ctx, visitorID)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to read cached location for merge", zap.Error(err))
		return
	}
	if record == nil {
		return
	}

	payload.City = record.City
	payload.State = record.State
	payload.Country = record.Country
	payload.Latitude = strconv.FormatFloat(record.Latitude, 'f', -1, 64)
	payload.Longitude = strconv.FormatFloat(record.Longitude, 'f', -1, 64)
}

// setMarker records a submission marker. Marker failures are logged
// only, the submission itself already succeeded.
func (s *Service) setMarker(ctx context.Context, visitorID, key string) {
	value, _ := json.Marshal(models.Marker{At: time.Now().UTC()})
	if err := s.store.Set(ctx, visitorID, key, string(value)); err != nil {
		logger.FromContext(ctx).Warn("Failed to set submission marker",
			zap.String("key", key),
			zap.Error(err))
	}
}

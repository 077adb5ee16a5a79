package models

import "time"

// SystemStatus represents the system status response
type SystemStatus struct {
	Service   string           `json:"service" example:"zapbytes"`
	Version   string           `json:"version" example:"1.0.0"`
	Status    string           `json:"status" example:"running"`
	Timestamp time.Time        `json:"timestamp" example:"2026-08-30T08:13:24Z"`
	Scheduler *SchedulerStatus `json:"scheduler,omitempty"`
}

// SchedulerStatus represents the scheduler status
type SchedulerStatus struct {
	Running   bool      `json:"running" example:"true"`
	JobCount  int       `json:"job_count" example:"1"`
	Entries   int       `json:"entries" example:"1"`
	Timestamp time.Time `json:"timestamp" example:"2026-08-30T08:13:24Z"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp" example:"2026-08-30T08:13:24Z"`
	Service   string    `json:"service" example:"zapbytes"`
	Version   string    `json:"version" example:"1.0.0"`
}

// LocationCaptureRequest represents the geolocation capture request.
// Pointers distinguish a missing coordinate from a legitimate zero,
// the equator and the prime meridian are valid positions.
type LocationCaptureRequest struct {
	Latitude  *float64 `json:"latitude" example:"28.7041" binding:"required"`
	Longitude *float64 `json:"longitude" example:"77.1025" binding:"required"`
}

// LocationCaptureResponse represents the geolocation capture response
type LocationCaptureResponse struct {
	Saved   bool   `json:"saved" example:"true"`
	City    string `json:"city,omitempty" example:"Delhi"`
	State   string `json:"state,omitempty" example:"Delhi"`
	Country string `json:"country,omitempty" example:"India"`
}

// LeadSubmitRequest represents the lead popup submission request
type LeadSubmitRequest struct {
	Name    string `json:"name" example:"Ravi Kumar" binding:"required"`
	Phone   string `json:"phone" example:"98765 43210" binding:"required"`
	Pincode string `json:"pincode" example:"110085" binding:"required"`
	Email   string `json:"email,omitempty" example:"ravi@example.com"`
	Consent bool   `json:"consent" example:"true"`
}

// ContactSubmitRequest represents the contact form submission request
type ContactSubmitRequest struct {
	Name    string `json:"name" example:"Ravi Kumar" binding:"required"`
	Email   string `json:"email" example:"ravi@example.com" binding:"required"`
	Phone   string `json:"phone" example:"98765 43210" binding:"required"`
	Message string `json:"message" example:"Looking for a 200 Mbps plan" binding:"required"`
}

// SubmissionResponse represents the result of a form submission
type SubmissionResponse struct {
	Success  bool   `json:"success" example:"true"`
	Feasible bool   `json:"feasible" example:"true"`
	Message  string `json:"message" example:"Thank You! Our team will contact you within 24 hours."`
}

// SessionStateResponse represents the per-visitor session state
type SessionStateResponse struct {
	HasLocation      bool   `json:"has_location" example:"true"`
	City             string `json:"city,omitempty" example:"Delhi"`
	LeadSubmitted    bool   `json:"lead_submitted" example:"false"`
	ContactSubmitted bool   `json:"contact_submitted" example:"false"`
	CTADismissed     bool   `json:"cta_dismissed" example:"false"`
}

// SessionCloseResponse represents the unload beacon response
type SessionCloseResponse struct {
	FallbackQueued bool `json:"fallback_queued" example:"true"`
}

// LogLevelRequest represents a runtime log level change request
type LogLevelRequest struct {
	Level string `json:"level" example:"debug" binding:"required"`
}

// LogLevelResponse represents the result of a log level change
type LogLevelResponse struct {
	PreviousLevel string `json:"previous_level" example:"info"`
	CurrentLevel  string `json:"current_level" example:"debug"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
	Success bool   `json:"success" example:"true"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"validation failed"`
	Code    int    `json:"code" example:"400"`
	Details string `json:"details,omitempty" example:"pincode must be 6 digits"`
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"zapbytes/pkg/leads"
	"zapbytes/pkg/logger"
	"zapbytes/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Common error type definitions
var (
	// ErrInvalidParam indicates invalid parameter error
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrVisitorRequired indicates a missing visitor identity header
	ErrVisitorRequired = errors.New("visitor identity required")

	// ErrResourceNotFound indicates resource not found error
	ErrResourceNotFound = errors.New("resource not found")

	// ErrServiceUnavailable indicates service unavailable error
	ErrServiceUnavailable = errors.New("service unavailable")
)

// APIError represents a custom API error structure
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API Error (Code: %d, Message: %s): %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("API Error (Code: %d, Message: %s)", e.Code, e.Message)
}

// Unwrap supports error wrapping
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, err error) *APIError {
	return &APIError{
		Code:    http.StatusBadRequest,
		Message: message,
		Err:     err,
	}
}

// NewInternalServerError creates a 500 Internal Server Error
func NewInternalServerError(message string, err error) *APIError {
	return &APIError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}

// validationErrors maps domain validation failures to client messages
var validationErrors = map[error]string{
	leads.ErrNameRequired:    "Name is required",
	leads.ErrInvalidPhone:    "Phone number must be a 10-digit Indian mobile number",
	leads.ErrInvalidPincode:  "Pincode must be 6 digits",
	leads.ErrInvalidEmail:    "Email address is invalid",
	leads.ErrMessageRequired: "Message is required",
	leads.ErrConsentRequired: "Consent is required to submit this form",
}

// HandleError provides unified error handling
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		// Log detailed error information
		if apiErr.Err != nil {
			logger.Error("API error occurred",
				zap.Int("code", apiErr.Code),
				zap.String("message", apiErr.Message),
				zap.Error(apiErr.Err))
		} else {
			logger.Warn("API error occurred",
				zap.Int("code", apiErr.Code),
				zap.String("message", apiErr.Message))
		}

		response.Error(c, apiErr.Code, apiErr.Message, apiErr.Err)
		return
	}

	// Domain validation failures map to 400 with a client-facing message
	for sentinel, message := range validationErrors {
		if errors.Is(err, sentinel) {
			response.BadRequest(c, message, err)
			return
		}
	}

	// Handle standard errors
	switch {
	case errors.Is(err, ErrInvalidParam):
		response.BadRequest(c, "Invalid parameter", err)
	case errors.Is(err, ErrVisitorRequired):
		response.BadRequest(c, "X-Visitor-ID header is required", nil)
	case errors.Is(err, ErrResourceNotFound):
		response.NotFound(c, "Resource not found")
	case errors.Is(err, ErrServiceUnavailable):
		response.Unavailable(c, "Service unavailable", err)
	default:
		// Unknown error, log details and return generic 500 error
		logger.Error("Unexpected error occurred", zap.Error(err))
		response.Internal(c, "Internal server error", nil)
	}
}

// WrapError wraps an error and adds context information
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ValidateRequired validates required parameters
func ValidateRequired(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidParam, fieldName)
	}
	return nil
}

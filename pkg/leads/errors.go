package leads

import "errors"

// Validation error definitions using sentinel errors pattern
var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidPhone    = errors.New("phone must contain exactly 10 digits")
	ErrInvalidPincode  = errors.New("pincode must be exactly 6 digits")
	ErrInvalidEmail    = errors.New("email address is not valid")
	ErrMessageRequired = errors.New("message is required")
	ErrConsentRequired = errors.New("consent is required to submit")
)

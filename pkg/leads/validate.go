package leads

import (
	"regexp"
	"strings"
)

// CallingCodePrefix is prepended to normalized phone numbers
const CallingCodePrefix = "91"

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// NormalizePhone strips formatting from a raw phone number and prefixes
// the calling code. Input must reduce to exactly 10 digits.
func NormalizePhone(raw string) (string, error) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() != 10 {
		return "", ErrInvalidPhone
	}

	return CallingCodePrefix + digits.String(), nil
}

// ValidatePincode checks for exactly 6 digits with no other characters
func ValidatePincode(pincode string) error {
	if len(pincode) != 6 {
		return ErrInvalidPincode
	}
	for _, r := range pincode {
		if r < '0' || r > '9' {
			return ErrInvalidPincode
		}
	}
	return nil
}

// ValidateEmail performs the loose shape check used by the page forms
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

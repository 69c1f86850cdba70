package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Lenient phone shape: optional +, digits, spaces, parens, dashes, 8-20 chars
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]{8,20}$`)

	// Social link URLs must be plain http(s); anything else is rejected
	linkURLRegex = regexp.MustCompile(`^https?://.+`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("link_url", LinkURL)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// LinkURL validates that a string is an absolute http or https URL
func LinkURL(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return linkURLRegex.MatchString(val)
}

package application

import (
	"github.com/satyadharma/registration-service/pkg/validation"
)

// registrationValidator is stateless and safe for concurrent use.
var registrationValidator = validation.New()

// ValidateRegistration checks a raw registration payload for structural
// correctness before any domain object is constructed. It collects every
// violation (missing name, missing email, password missing or shorter than
// 6 characters) rather than stopping at the first, and has no side effects.
func ValidateRegistration(req RegistrationRequest) error {
	if err := registrationValidator.Struct(req); err != nil {
		return &ValidationError{Violations: validation.Messages(err)}
	}
	return nil
}

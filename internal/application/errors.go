package application

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError is a caller-input defect: the request never reached the
// domain. Violations holds every violated rule in field order, so one round
// trip gives the caller full feedback.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "validation: " + strings.Join(e.Violations, "; ")
}

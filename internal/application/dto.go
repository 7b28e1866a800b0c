package application

import "github.com/satyadharma/registration-service/internal/domain/entity"

// RegistrationRequest is the caller-supplied registration payload. It is
// transient: validated, consumed by Execute, and discarded.
type RegistrationRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
}

// UserResponse is the outward-facing shape of a persisted user. It
// deliberately has no password or hash field; entity state never crosses
// the boundary verbatim.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUserResponse derives the output DTO from a persisted entity.
func NewUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

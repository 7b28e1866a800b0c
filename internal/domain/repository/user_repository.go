package repository

import (
	"context"

	"github.com/satyadharma/registration-service/internal/domain/entity"
)

// UserRepository is the persistence boundary for the user aggregate.
// The application layer depends only on this interface; the storage
// technology lives behind it (Postgres in production, in-memory in tests).
type UserRepository interface {
	// Save persists the entity and populates ID/CreatedAt/UpdatedAt in place.
	Save(ctx context.Context, u *entity.User) error

	// FindByEmail returns the user with the given email, or (nil, nil) when
	// no such user exists. Absence is a valid outcome, not an error.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

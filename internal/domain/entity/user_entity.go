package entity

import (
	"time"
)

// User is the aggregate root for the registration domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
//
// Identity is the ID alone: two User values refer to the same entity iff
// their IDs match, whatever the other fields hold. The ID is assigned by
// the persistence layer on first save and is empty before that.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds an unsaved User from already-validated registration data.
// It deliberately assigns no ID; that is the repository's job.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// Equals reports whether both values represent the same entity.
// Unsaved users (empty ID) are never equal to anything.
func (u *User) Equals(other *User) bool {
	if u == nil || other == nil {
		return false
	}
	if u.ID == "" || other.ID == "" {
		return false
	}
	return u.ID == other.ID
}

// ChangeEmail is the single mutation point for the email field.
// It performs no re-validation today; callers must not rely on that, and
// future invariants (uniqueness, normalization) land here.
func (u *User) ChangeEmail(newEmail string) {
	u.Email = newEmail
}

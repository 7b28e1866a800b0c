package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/satyadharma/registration-service/internal/domain/entity"
	"github.com/satyadharma/registration-service/internal/domain/repository"
)

// UserRepository is an in-memory implementation of the repository contract,
// used by tests and by local development without Postgres. No uniqueness
// enforcement: saving the same email twice yields two users, matching the
// documented non-idempotence of registration.
type UserRepository struct {
	mu    sync.RWMutex
	users []*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	r.users = append(r.users, &stored)
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Last write wins when duplicates exist
	for i := len(r.users) - 1; i >= 0; i-- {
		if r.users[i].Email == email {
			found := *r.users[i]
			return &found, nil
		}
	}
	return nil, nil
}

// Len reports the number of stored users.
func (r *UserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

var _ repository.UserRepository = (*UserRepository)(nil)

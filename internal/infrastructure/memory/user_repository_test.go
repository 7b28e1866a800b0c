package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyadharma/registration-service/internal/domain/entity"
)

func TestSaveAssignsIDAndTimestamps(t *testing.T) {
	repo := NewUserRepository()
	u := entity.NewUser("Ada", "ada@example.com", "hash")

	require.NoError(t, repo.Save(context.Background(), u))

	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())
	assert.False(t, u.UpdatedAt.IsZero())
}

func TestSaveTwiceYieldsTwoUsers(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	a := entity.NewUser("Ada", "ada@example.com", "hash")
	b := entity.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, repo.Len())
}

func TestFindByEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := entity.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, repo.Save(ctx, u))

	found, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, u.Equals(found))
}

func TestFindByEmailAbsentIsNotAnError(t *testing.T) {
	repo := NewUserRepository()

	found, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindByEmailReturnsCopy(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := entity.NewUser("Ada", "ada@example.com", "hash")
	require.NoError(t, repo.Save(ctx, u))

	found, _ := repo.FindByEmail(ctx, "ada@example.com")
	found.ChangeEmail("mutated@example.com")

	again, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, again, "mutating a returned entity must not touch the store")
}

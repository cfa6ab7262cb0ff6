package memory

import (
	"context"
	"testing"

	"placebook/config"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/repository"
	"placebook/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPlaceStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewPlaceStore()

	first := &entity.Place{Name: "A"}
	second := &entity.Place{Name: "B"}
	require.NoError(t, store.CreatePlace(ctx, first))
	require.NoError(t, store.CreatePlace(ctx, second))
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	all, err := store.FindAllPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Name)

	// returned values are copies
	all[0].Name = "mutated"
	got, err := store.FindPlaceByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	got.Name = "A2"
	require.NoError(t, store.UpdatePlace(ctx, got))
	got, _ = store.FindPlaceByID(ctx, first.ID)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)

	require.NoError(t, store.DeletePlace(ctx, first.ID))
	assert.True(t, errors.Is(store.DeletePlace(ctx, first.ID), repository.ErrPlaceNotFound))
	_, err = store.FindPlaceByID(ctx, first.ID)
	assert.True(t, errors.Is(err, repository.ErrPlaceNotFound))
	assert.True(t, errors.Is(store.UpdatePlace(ctx, &entity.Place{ID: "nope"}), repository.ErrPlaceNotFound))

	all, _ = store.FindAllPlaces(ctx)
	assert.Len(t, all, 1)
}

func TestUserStore_SeedsAndLooksUp(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)

	store, err := NewUserStore([]config.BackendUser{
		{ID: "u1", Name: "Amira", Email: "Amira@Example.com", Role: "user", Password: "amira-pass"},
		{Name: "Youssef", Email: "youssef@example.com", Role: entity.RoleAdmin, Password: "youssef-pass"},
	}, hasher)
	require.NoError(t, err)

	user, hash, err := store.FindCredentialsByEmail(ctx, " amira@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, hasher.Check("amira-pass", hash))

	byID, err := store.FindUserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "amira@example.com", byID.Email)

	admin, _, err := store.FindCredentialsByEmail(ctx, "youssef@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)

	_, err = store.FindUserByID(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserStore_RejectsDuplicateEmail(t *testing.T) {
	_, err := NewUserStore([]config.BackendUser{
		{Email: "a@b.c", Password: "x"},
		{Email: "A@B.C", Password: "y"},
	}, auth.NewBcryptHasher(bcrypt.MinCost))
	assert.Error(t, err)
}

package impl

import (
	"context"
	"testing"
	"time"

	"placebook/config"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/infra/auth"
	"placebook/internal/infra/persistence/memory"
	"placebook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	amiraAccount = entity.User{ID: "6650c1f2a4b5c6d7e8f90123", Name: "Amira", Email: "amira@example.com", Role: "user"}
	karimAccount = entity.User{ID: "6650c1f2a4b5c6d7e8f90125", Name: "Karim", Email: "karim@example.com", Role: "user"}
	adminAccount = entity.User{ID: "6650c1f2a4b5c6d7e8f90127", Name: "Root", Email: "root@example.com", Role: entity.RoleAdmin}
)

type backendFixtures struct {
	catalog usecase.CatalogUsecase
	account usecase.AccountUsecase
}

func createTestBackend(t *testing.T, adminOverride bool) backendFixtures {
	t.Helper()

	cfg := &config.Config{
		Backend: &config.BackendConfig{
			SecretKey: "catalog_test_secret",
			TokenTTL:  time.Hour,
		},
	}
	cfg.Places.AdminOverride = adminOverride

	seeded := make([]config.BackendUser, 0, 3)
	for _, u := range []entity.User{amiraAccount, karimAccount, adminAccount} {
		seeded = append(seeded, config.BackendUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Password: u.Name + "-pass"})
	}

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	users, err := memory.NewUserStore(seeded, hasher)
	require.NoError(t, err)

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := newDiscardLogger()

	return backendFixtures{
		catalog: NewCatalogService(memory.NewPlaceStore(), users, cfg, logger),
		account: NewAccountService(users, hasher, tokens, logger),
	}
}

func villaDraft() entity.PlaceDraft {
	return entity.PlaceDraft{
		Name:     "Villa",
		Type:     "terrain vide",
		Location: entity.LatLng{Latitude: 35.5, Longitude: 10.6},
	}
}

func TestCatalogService_CreateResolvesCreator(t *testing.T) {
	fx := createTestBackend(t, false)
	ctx := context.Background()

	place, err := fx.catalog.CreatePlace(ctx, amiraAccount.ID, villaDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, place.ID)
	assert.Equal(t, entity.Owner{ID: amiraAccount.ID, Name: "Amira"}, place.CreatedBy)
	assert.False(t, place.CreatedAt.IsZero())

	places, err := fx.catalog.ListPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "terrain vide", places[0].Type)
}

func TestCatalogService_CreateValidation(t *testing.T) {
	fx := createTestBackend(t, false)
	ctx := context.Background()

	tests := []struct {
		name    string
		creator string
		draft   func() entity.PlaceDraft
		want    error
	}{
		{
			name:    "blank name",
			creator: amiraAccount.ID,
			draft: func() entity.PlaceDraft {
				d := villaDraft()
				d.Name = "  "
				return d
			},
			want: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown creator",
			creator: "nobody",
			draft:   villaDraft,
			want:    domainerrors.ErrValidationFailed,
		},
		{
			name:    "latitude out of range",
			creator: amiraAccount.ID,
			draft: func() entity.PlaceDraft {
				d := villaDraft()
				d.Location.Latitude = 91
				return d
			},
			want: domainerrors.ErrInvalidCoordinate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.catalog.CreatePlace(ctx, tt.creator, tt.draft())
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	places, err := fx.catalog.ListPlaces(ctx)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestCatalogService_OwnershipRules(t *testing.T) {
	fx := createTestBackend(t, false)
	ctx := context.Background()

	place, err := fx.catalog.CreatePlace(ctx, amiraAccount.ID, villaDraft())
	require.NoError(t, err)

	renamed := "Villa B"
	patch := entity.PlacePatch{Name: &renamed}

	_, err = fx.catalog.UpdatePlace(ctx, karimAccount, place.ID, patch)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	// admins are ordinary users without the override
	err = fx.catalog.DeletePlace(ctx, adminAccount, place.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))

	updated, err := fx.catalog.UpdatePlace(ctx, amiraAccount, place.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, "Villa B", updated.Name)

	require.NoError(t, fx.catalog.DeletePlace(ctx, amiraAccount, place.ID))

	err = fx.catalog.DeletePlace(ctx, amiraAccount, place.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCatalogService_AdminOverride(t *testing.T) {
	fx := createTestBackend(t, true)
	ctx := context.Background()

	place, err := fx.catalog.CreatePlace(ctx, amiraAccount.ID, villaDraft())
	require.NoError(t, err)

	description := "moderated"
	updated, err := fx.catalog.UpdatePlace(ctx, adminAccount, place.ID, entity.PlacePatch{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "moderated", updated.Description)
	assert.Equal(t, amiraAccount.ID, updated.CreatedBy.ID)

	require.NoError(t, fx.catalog.DeletePlace(ctx, adminAccount, place.ID))
}

func TestCatalogService_UpdateRejectsEmptyPatch(t *testing.T) {
	fx := createTestBackend(t, false)
	ctx := context.Background()

	place, err := fx.catalog.CreatePlace(ctx, amiraAccount.ID, villaDraft())
	require.NoError(t, err)

	_, err = fx.catalog.UpdatePlace(ctx, amiraAccount, place.ID, entity.PlacePatch{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	blank := ""
	_, err = fx.catalog.UpdatePlace(ctx, amiraAccount, place.ID, entity.PlacePatch{Name: &blank})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.catalog.UpdatePlace(ctx, amiraAccount, "missing", entity.PlacePatch{Name: &blank})
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_Login(t *testing.T) {
	fx := createTestBackend(t, false)
	ctx := context.Background()

	token, user, err := fx.account.Login(ctx, "AMIRA@example.com", "Amira-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, amiraAccount.ID, user.ID)

	_, _, err = fx.account.Login(ctx, "amira@example.com", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, _, err = fx.account.Login(ctx, "ghost@example.com", "x")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Profile(t *testing.T) {
	fx := createTestBackend(t, false)

	user, err := fx.account.Profile(context.Background(), karimAccount.ID)
	require.NoError(t, err)
	assert.Equal(t, "Karim", user.Name)

	_, err = fx.account.Profile(context.Background(), "gone")
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
}

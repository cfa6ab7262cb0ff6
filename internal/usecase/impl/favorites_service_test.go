package impl

import (
	"context"
	"encoding/json"
	"testing"

	"placebook/config"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/infra/kv"
	"placebook/internal/infra/navigation"
	mockRepo "placebook/internal/mocks/repository"
	"placebook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoritesFixtures struct {
	service   usecase.FavoritesUsecase
	store     repository.KeyValueStore
	navigator *navigation.RecordingNavigator
}

func createTestFavoritesService(t *testing.T, allowDuplicates bool) favoritesFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.Favorites.AllowDuplicates = allowDuplicates

	store := kv.NewMemoryStore()
	navigator := navigation.NewRecordingNavigator()

	return favoritesFixtures{
		service:   NewFavoritesService(store, navigator, cfg, newDiscardLogger()),
		store:     store,
		navigator: navigator,
	}
}

func samplePlace(id string) entity.Place {
	return entity.Place{
		ID:          id,
		Name:        "Villa " + id,
		Description: "Sea view",
		Type:        entity.PlaceTypeR2,
		Address:     "Sousse",
		CreatedBy:   entity.Owner{ID: "u1"},
	}
}

func TestFavoritesService_AbsentListIsEmpty(t *testing.T) {
	fx := createTestFavoritesService(t, false)

	entries, err := fx.service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestFavoritesService_AddPersistsSnapshot(t *testing.T) {
	fx := createTestFavoritesService(t, false)
	ctx := context.Background()

	require.NoError(t, fx.service.Add(ctx, samplePlace("p1")))

	raw, err := fx.store.Get(ctx, repository.KeyAwaitedPlaces)
	require.NoError(t, err)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, "p1", stored[0]["id"])
	assert.Equal(t, false, stored[0]["showDescription"])
	assert.NotContains(t, stored[0], "address")
}

func TestFavoritesService_AddRemoveInvariant(t *testing.T) {
	fx := createTestFavoritesService(t, false)
	ctx := context.Background()

	require.NoError(t, fx.service.Add(ctx, samplePlace("p1")))
	require.NoError(t, fx.service.Add(ctx, samplePlace("p2")))
	require.NoError(t, fx.service.Add(ctx, samplePlace("p1")))

	entries, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, fx.service.Remove(ctx, "p1"))
	entries, err = fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "p2", entries[0].ID)

	// removing an absent id is a no-op
	require.NoError(t, fx.service.Remove(ctx, "p1"))
	entries, _ = fx.service.List(ctx)
	assert.Len(t, entries, 1)
}

func TestFavoritesService_AllowDuplicates(t *testing.T) {
	fx := createTestFavoritesService(t, true)
	ctx := context.Background()

	require.NoError(t, fx.service.Add(ctx, samplePlace("p1")))
	require.NoError(t, fx.service.Add(ctx, samplePlace("p1")))

	entries, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, fx.service.Remove(ctx, "p1"))
	entries, _ = fx.service.List(ctx)
	assert.Empty(t, entries)
}

func TestFavoritesService_SnapshotIsIndependent(t *testing.T) {
	fx := createTestFavoritesService(t, false)
	ctx := context.Background()

	place := samplePlace("p1")
	require.NoError(t, fx.service.Add(ctx, place))

	place.Name = "renamed on server"

	entries, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Villa p1", entries[0].Name)
}

func TestFavoritesService_AwaitNavigatesWithSelectedItem(t *testing.T) {
	fx := createTestFavoritesService(t, false)

	require.NoError(t, fx.service.Await(context.Background(), samplePlace("p1")))

	last, ok := fx.navigator.Last()
	require.True(t, ok)
	assert.Equal(t, repository.DestinationFavorites, last.Destination)

	selected, ok := last.Params["selectedItem"].(entity.FavoriteEntry)
	require.True(t, ok)
	assert.Equal(t, "p1", selected.ID)
}

func TestFavoritesService_ToggleExpanded(t *testing.T) {
	fx := createTestFavoritesService(t, false)
	ctx := context.Background()

	require.NoError(t, fx.service.Add(ctx, samplePlace("p1")))
	require.NoError(t, fx.service.ToggleExpanded(ctx, "p1"))

	entries, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.True(t, entries[0].Expanded)

	require.NoError(t, fx.service.ToggleExpanded(ctx, "p1"))
	entries, _ = fx.service.List(ctx)
	assert.False(t, entries[0].Expanded)

	assert.NoError(t, fx.service.ToggleExpanded(ctx, "missing"))
}

func TestFavoritesService_ReadsLegacyPayload(t *testing.T) {
	fx := createTestFavoritesService(t, false)
	ctx := context.Background()

	legacy := `[{"id":"p1","name":"A","description":"d","type":"r+1","showDescription":true}]`
	require.NoError(t, fx.store.Set(ctx, repository.KeyAwaitedPlaces, legacy))

	entries, err := fx.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Expanded)
}

func TestFavoritesService_CorruptPayloadLeavesStoreUntouched(t *testing.T) {
	fx := createTestFavoritesService(t, false)
	ctx := context.Background()

	require.NoError(t, fx.store.Set(ctx, repository.KeyAwaitedPlaces, "{not json"))

	err := fx.service.Add(ctx, samplePlace("p1"))
	assert.True(t, errors.Is(err, domainerrors.ErrFavoritesCorrupt))

	raw, _ := fx.store.Get(ctx, repository.KeyAwaitedPlaces)
	assert.Equal(t, "{not json", raw)
}

func TestFavoritesService_ClearAndValidation(t *testing.T) {
	fx := createTestFavoritesService(t, false)
	ctx := context.Background()

	assert.True(t, errors.Is(fx.service.Add(ctx, entity.Place{}), domainerrors.ErrValidationFailed))

	require.NoError(t, fx.service.Add(ctx, samplePlace("p1")))
	require.NoError(t, fx.service.Clear(ctx))

	entries, err := fx.service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFavoritesService_StorageFailure(t *testing.T) {
	store := mockRepo.NewMockKeyValueStore(t)
	service := NewFavoritesService(store, nil, &config.Config{}, newDiscardLogger())

	store.EXPECT().Get(mock.Anything, repository.KeyAwaitedPlaces).Return("[]", nil).Once()
	store.EXPECT().Set(mock.Anything, repository.KeyAwaitedPlaces, mock.Anything).
		Return(errors.New("disk full")).Once()

	err := service.Add(context.Background(), samplePlace("p1"))
	assert.True(t, errors.Is(err, domainerrors.ErrStorage))

	store.EXPECT().Get(mock.Anything, repository.KeyAwaitedPlaces).Return("", errors.New("io error")).Once()
	_, err = service.List(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrStorage))
}

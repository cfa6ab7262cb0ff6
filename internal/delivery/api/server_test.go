package api_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"placebook/config"
	"placebook/internal/delivery/api"
	"placebook/internal/delivery/api/middleware"
	"placebook/internal/delivery/api/router"
	"placebook/internal/delivery/api/router/handler"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/infra/auth"
	"placebook/internal/infra/kv"
	"placebook/internal/infra/persistence/memory"
	"placebook/internal/infra/remote"
	"placebook/internal/usecase"
	"placebook/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

const (
	amiraID = "6650c1f2a4b5c6d7e8f90123"
	karimID = "6650c1f2a4b5c6d7e8f90125"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBackendConfig() *config.Config {
	cfg := &config.Config{
		Backend: &config.BackendConfig{
			SecretKey: "test-secret",
			Users: []config.BackendUser{
				{ID: amiraID, Name: "Amira", Email: "amira@example.com", Role: "user", Password: "amira-pass"},
				{ID: karimID, Name: "Karim", Email: "karim@example.com", Role: "user", Password: "karim-pass"},
			},
		},
	}
	cfg.ApplyDefaults()

	return cfg
}

// startBackend mounts the backend on an httptest server and returns its URL
func startBackend(t *testing.T) string {
	t.Helper()

	cfg := newBackendConfig()
	logger := newDiscardLogger()

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	users, err := memory.NewUserStore(cfg.Backend.Users, hasher)
	require.NoError(t, err)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	catalog := impl.NewCatalogService(memory.NewPlaceStore(), users, cfg, logger)
	account := impl.NewAccountService(users, hasher, tokens, logger)

	lc := fxtest.NewLifecycle(t)
	srv, err := api.NewServer(api.ServerParams{
		Lc:     lc,
		Cfg:    cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			PlaceHandler:   handler.NewPlaceHandler(handler.PlaceHandlerParams{CatalogUC: catalog, Logger: logger}),
			UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{AccountUC: account, Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(tokens),
		},
	})
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	lc.RequireStart()
	t.Cleanup(func() {
		ts.Close()
		lc.RequireStop()
	})

	return ts.URL
}

type clientApp struct {
	session   usecase.SessionUsecase
	directory usecase.PlaceDirectory
}

// newClientApp wires one client the way cmd/placesctl does
func newClientApp(t *testing.T, baseURL string) clientApp {
	t.Helper()

	cfg := newBackendConfig()
	logger := newDiscardLogger()

	client := remote.New(baseURL, http.DefaultClient, logger)
	store := kv.NewMemoryStore()
	tokens := auth.NewStoredTokenProvider(store)
	identity := impl.NewUserIdentity(client, tokens, logger)
	directory := impl.NewPlaceDirectory(client, tokens, identity, cfg, logger)

	return clientApp{
		session:   impl.NewSessionService(client, store, identity, directory, logger),
		directory: directory,
	}
}

func TestBackend_CreateThenListRoundTrip(t *testing.T) {
	baseURL := startBackend(t)
	app := newClientApp(t, baseURL)
	ctx := context.Background()

	_, err := app.directory.Create(ctx, entity.PlaceDraft{Name: "A", Location: entity.LatLng{Latitude: 35.5, Longitude: 10.6}})
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))

	user, err := app.session.Login(ctx, "amira@example.com", "amira-pass")
	require.NoError(t, err)
	assert.Equal(t, amiraID, user.ID)

	created, err := app.directory.Create(ctx, entity.PlaceDraft{
		Name:        "A",
		Description: "Sea view",
		Type:        entity.PlaceTypeR1,
		Location:    entity.LatLng{Latitude: 35.5, Longitude: 10.6},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	places, err := app.directory.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, places, 1)

	assert.Equal(t, created.ID, places[0].ID)
	assert.Equal(t, "A", places[0].Name)
	assert.InDelta(t, 35.5, places[0].Location.Latitude, 1e-9)
	assert.InDelta(t, 10.6, places[0].Location.Longitude, 1e-9)
	assert.Equal(t, amiraID, places[0].CreatedBy.ID)
	assert.Equal(t, "Amira", places[0].CreatedBy.Name)
	assert.True(t, places[0].IsOwnedBy(amiraID))
}

func TestBackend_OwnershipIsEnforced(t *testing.T) {
	baseURL := startBackend(t)
	ctx := context.Background()

	owner := newClientApp(t, baseURL)
	_, err := owner.session.Login(ctx, "amira@example.com", "amira-pass")
	require.NoError(t, err)
	place, err := owner.directory.Create(ctx, entity.PlaceDraft{Name: "A", Location: entity.LatLng{Latitude: 1, Longitude: 2}})
	require.NoError(t, err)

	other := newClientApp(t, baseURL)
	_, err = other.session.Login(ctx, "karim@example.com", "karim-pass")
	require.NoError(t, err)
	_, err = other.directory.ListAll(ctx)
	require.NoError(t, err)

	name := "hijacked"
	_, err = other.directory.Update(ctx, place.ID, entity.PlacePatch{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpdate))

	var re *domainerrors.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusForbidden, re.Status)

	err = other.directory.Delete(ctx, place.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrDelete))

	name = "B"
	updated, err := owner.directory.Update(ctx, place.ID, entity.PlacePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "B", updated.Name)
	assert.Equal(t, place.Location, updated.Location)

	require.NoError(t, owner.directory.Delete(ctx, place.ID))
	assert.Empty(t, owner.directory.Places())

	// already gone on the server
	require.NoError(t, owner.directory.Delete(ctx, place.ID))
}

func TestBackend_UpdateUnknownIDLeavesCollection(t *testing.T) {
	baseURL := startBackend(t)
	app := newClientApp(t, baseURL)
	ctx := context.Background()

	_, err := app.session.Login(ctx, "amira@example.com", "amira-pass")
	require.NoError(t, err)
	place, err := app.directory.Create(ctx, entity.PlaceDraft{Name: "A", Location: entity.LatLng{Latitude: 35, Longitude: 10}})
	require.NoError(t, err)
	before := app.directory.Places()

	name := "B"
	_, err = app.directory.Update(ctx, "6650c1f2a4b5c6d7e8f9ffff", entity.PlacePatch{Name: &name})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUpdate))

	var re *domainerrors.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusNotFound, re.Status)

	assert.Equal(t, before, app.directory.Places())
	got, ok := app.directory.Get(place.ID)
	require.True(t, ok)
	assert.Equal(t, "A", got.Name)
}

func TestBackend_LoginRejected(t *testing.T) {
	app := newClientApp(t, startBackend(t))

	_, err := app.session.Login(context.Background(), "amira@example.com", "wrong")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	_, err = app.session.Current(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrAuthRequired))
}

func TestBackend_Envelopes(t *testing.T) {
	baseURL := startBackend(t)

	t.Run("health carries request id", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		require.NoError(t, err)
		req.Header.Set("X-Request-Id", "req-1")

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "req-1", resp.Header.Get("X-Request-Id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "success", body["status"])
	})

	t.Run("missing bearer is a fail envelope", func(t *testing.T) {
		resp, err := http.Get(baseURL + "/users/me")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body domainerrors.ErrorBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, domainerrors.StatusFail, body.Status)
		assert.NotEmpty(t, body.ServerMessage())
	})

	t.Run("create without name is rejected", func(t *testing.T) {
		resp, err := http.Post(baseURL+"/places", "application/json",
			strings.NewReader(`{"createdBy":"`+amiraID+`","location":{"type":"Point","coordinates":[10,35]}}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body domainerrors.ErrorBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.Error)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
	})

	t.Run("malformed location is rejected", func(t *testing.T) {
		resp, err := http.Post(baseURL+"/places", "application/json",
			strings.NewReader(`{"name":"A","createdBy":"`+amiraID+`","location":{"type":"Point","coordinates":[10]}}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		var body domainerrors.ErrorBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.Error)
		assert.Equal(t, domainerrors.ErrMalformedGeometry.ErrorCode(), body.Error.Code)
	})

	t.Run("wire shape of a created place", func(t *testing.T) {
		resp, err := http.Post(baseURL+"/places", "application/json",
			strings.NewReader(`{"name":"A","createdBy":"`+amiraID+`","location":{"type":"Point","coordinates":[10.6,35.5]}}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Status string `json:"status"`
			Data   struct {
				Place map[string]any `json:"place"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "success", body.Status)
		assert.NotEmpty(t, body.Data.Place["_id"])
		assert.Equal(t, map[string]any{"_id": amiraID, "name": "Amira"}, body.Data.Place["createdBy"])
		assert.Equal(t, map[string]any{"type": "Point", "coordinates": []any{10.6, 35.5}}, body.Data.Place["location"])
	})
}

package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"placebook/config"
	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/usecase"

	"github.com/pkg/errors"
)

type favoritesService struct {
	store           repository.KeyValueStore
	navigator       repository.Navigator
	allowDuplicates bool
	logger          *slog.Logger
}

// NewFavoritesService creates the awaited places store on top of store.
// navigator may be nil, in which case Await only stores.
func NewFavoritesService(
	store repository.KeyValueStore,
	navigator repository.Navigator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FavoritesUsecase {
	return &favoritesService{
		store:           store,
		navigator:       navigator,
		allowDuplicates: cfg.Favorites.AllowDuplicates,
		logger:          logger,
	}
}

// List returns the stored entries
func (s *favoritesService) List(ctx context.Context) ([]entity.FavoriteEntry, error) {
	return s.load(ctx)
}

// Add appends a snapshot of place unless one with the same id exists and duplicates are off
func (s *favoritesService) Add(ctx context.Context, place entity.Place) error {
	if strings.TrimSpace(place.ID) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("place id is required")
	}

	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	if !s.allowDuplicates && containsFavorite(entries, place.ID) {
		s.logger.Debug("[Favorites] Place already awaited", slog.String("place_id", place.ID))

		return nil
	}

	entries = append(entries, entity.NewFavoriteEntry(place))

	return s.save(ctx, entries)
}

// Await stores place then opens the favorites screen with it selected
func (s *favoritesService) Await(ctx context.Context, place entity.Place) error {
	if err := s.Add(ctx, place); err != nil {
		return err
	}

	if s.navigator == nil {
		return nil
	}

	err := s.navigator.Navigate(ctx, repository.DestinationFavorites, map[string]any{
		"selectedItem": entity.NewFavoriteEntry(place),
	})
	if err != nil {
		return errors.Wrap(err, "navigate to favorites")
	}

	return nil
}

// Remove drops every entry with id
func (s *favoritesService) Remove(ctx context.Context, id string) error {
	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(entries, func(e entity.FavoriteEntry) bool {
		return e.ID == id
	})

	return s.save(ctx, kept)
}

// ToggleExpanded flips the local expanded flag of every entry with id
func (s *favoritesService) ToggleExpanded(ctx context.Context, id string) error {
	entries, err := s.load(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Expanded = !entries[i].Expanded
			changed = true
		}
	}
	if !changed {
		return nil
	}

	return s.save(ctx, entries)
}

// Clear forgets the whole list
func (s *favoritesService) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, repository.KeyAwaitedPlaces); err != nil {
		return domainerrors.ErrStorage.WithDetails(err.Error())
	}

	return nil
}

func (s *favoritesService) load(ctx context.Context) ([]entity.FavoriteEntry, error) {
	raw, err := s.store.Get(ctx, repository.KeyAwaitedPlaces)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return []entity.FavoriteEntry{}, nil
	}
	if err != nil {
		s.logger.Error("[Favorites] Failed to read awaited places", slog.Any("error", err))

		return nil, domainerrors.ErrStorage.WithDetails(err.Error())
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []entity.FavoriteEntry{}, nil
	}

	var entries []entity.FavoriteEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, domainerrors.ErrFavoritesCorrupt.WithDetails(err.Error())
	}

	return entries, nil
}

func (s *favoritesService) save(ctx context.Context, entries []entity.FavoriteEntry) error {
	if entries == nil {
		entries = []entity.FavoriteEntry{}
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.store.Set(ctx, repository.KeyAwaitedPlaces, string(raw)); err != nil {
		s.logger.Error("[Favorites] Failed to write awaited places", slog.Any("error", err))

		return domainerrors.ErrStorage.WithDetails(err.Error())
	}

	return nil
}

func containsFavorite(entries []entity.FavoriteEntry, id string) bool {
	return slices.ContainsFunc(entries, func(e entity.FavoriteEntry) bool {
		return e.ID == id
	})
}

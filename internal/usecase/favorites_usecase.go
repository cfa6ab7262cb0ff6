package usecase

import (
	"context"

	"placebook/internal/domain/entity"
)

// FavoritesUsecase manages the device-local list of awaited places.
// Every mutation reads the whole list, changes it and writes it back; calls
// must be serialized by the caller.
type FavoritesUsecase interface {
	// List returns the stored entries; an absent list is empty.
	List(ctx context.Context) ([]entity.FavoriteEntry, error)

	// Add stores a snapshot of place.
	Add(ctx context.Context, place entity.Place) error

	// Await adds place and navigates to the favorites destination.
	Await(ctx context.Context, place entity.Place) error

	// Remove drops every entry with id. Removing an absent id succeeds.
	Remove(ctx context.Context, id string) error

	// ToggleExpanded flips the expanded flag of the entry with id.
	ToggleExpanded(ctx context.Context, id string) error

	// Clear removes the whole list.
	Clear(ctx context.Context) error
}

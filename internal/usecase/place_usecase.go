package usecase

import (
	"context"

	"placebook/internal/domain/entity"
)

// PlaceDirectory owns the authoritative in-memory place collection. Entries
// enter it only from server responses; nothing is inserted before the server
// confirms it.
type PlaceDirectory interface {
	// ListAll fetches and normalizes the remote collection and replaces the
	// local one atomically. On failure the previous collection is kept.
	ListAll(ctx context.Context) ([]entity.Place, error)

	// Create submits draft on behalf of the current user and appends the
	// server's record on success.
	Create(ctx context.Context, draft entity.PlaceDraft) (entity.Place, error)

	// CreateAndRefresh creates, waits for the configured refresh delay, then lists again.
	CreateAndRefresh(ctx context.Context, draft entity.PlaceDraft) (entity.Place, []entity.Place, error)

	// Update patches name and/or description. Requires a token.
	Update(ctx context.Context, id string, patch entity.PlacePatch) (entity.Place, error)

	// Delete removes a place. Requires a token. Deleting an absent id succeeds.
	Delete(ctx context.Context, id string) error

	// Places returns a copy of the current collection.
	Places() []entity.Place

	// Get returns the place with id from the local collection.
	Get(id string) (entity.Place, bool)

	// IsOwnedBy reports whether userID created place.
	IsOwnedBy(place entity.Place, userID string) bool

	// CanManage reports whether user may edit or delete place.
	CanManage(place entity.Place, user entity.User) bool

	// Reset ends the current session: the collection is cleared and responses
	// to calls issued earlier are discarded.
	Reset()
}

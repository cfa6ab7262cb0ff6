package usecase

import (
	"context"

	"placebook/internal/domain/entity"
)

// CatalogUsecase is the server side of the places service, backing the
// development backend.
type CatalogUsecase interface {
	// ListPlaces returns every place, oldest first.
	ListPlaces(ctx context.Context) ([]*entity.Place, error)

	// CreatePlace stores draft on behalf of creatorID.
	CreatePlace(ctx context.Context, creatorID string, draft entity.PlaceDraft) (*entity.Place, error)

	// UpdatePlace applies patch when actor may manage the place.
	UpdatePlace(ctx context.Context, actor entity.User, id string, patch entity.PlacePatch) (*entity.Place, error)

	// DeletePlace removes the place when actor may manage it.
	DeletePlace(ctx context.Context, actor entity.User, id string) error
}

// AccountUsecase authenticates the seeded accounts of the development backend.
type AccountUsecase interface {
	// Login checks credentials and issues a bearer token.
	Login(ctx context.Context, email, password string) (token string, user *entity.User, err error)

	// Profile returns the account with id.
	Profile(ctx context.Context, id string) (*entity.User, error)
}

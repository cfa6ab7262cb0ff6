package repository

import (
	"context"
	"errors"

	"placebook/internal/domain/entity"
)

// Errors of the development backend's stores.
var (
	// ErrPlaceNotFound is returned when no place has the requested id.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrUserNotFound is returned when no account matches.
	ErrUserNotFound = errors.New("user not found")
)

// PlaceStore persists places on the development backend.
type PlaceStore interface {
	// CreatePlace assigns id and timestamps to place and stores it.
	CreatePlace(ctx context.Context, place *entity.Place) error

	// FindAllPlaces returns every place ordered by creation time.
	FindAllPlaces(ctx context.Context) ([]*entity.Place, error)

	// FindPlaceByID returns ErrPlaceNotFound when id is unknown.
	FindPlaceByID(ctx context.Context, id string) (*entity.Place, error)

	// UpdatePlace replaces the stored place and bumps UpdatedAt.
	UpdatePlace(ctx context.Context, place *entity.Place) error

	// DeletePlace returns ErrPlaceNotFound when id is unknown.
	DeletePlace(ctx context.Context, id string) error
}

// UserStore looks up the seeded accounts of the development backend.
type UserStore interface {
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// FindCredentialsByEmail returns the user and its password hash.
	FindCredentialsByEmail(ctx context.Context, email string) (*entity.User, string, error)
}

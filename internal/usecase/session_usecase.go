package usecase

import (
	"context"

	"placebook/internal/domain/entity"
)

// SessionUsecase tracks the signed-in user.
type SessionUsecase interface {
	// Login exchanges credentials for a token and persists token and user locally.
	Login(ctx context.Context, email, password string) (entity.User, error)

	// Logout forgets the token and user and ends the place directory session.
	Logout(ctx context.Context) error

	// Current returns the signed-in user, fetching it once per session.
	Current(ctx context.Context) (entity.User, error)

	// Bootstrap loads the current user and the place list concurrently.
	// The places are loaded even when no user is signed in.
	Bootstrap(ctx context.Context) (*BootstrapResult, error)
}

// BootstrapResult is what a freshly opened place screen needs.
type BootstrapResult struct {
	User      *entity.User // nil when nobody is signed in
	Places    []entity.Place
	UserError error // why User is nil, if it is
}

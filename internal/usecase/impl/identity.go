package impl

import (
	"context"
	"log/slog"
	"sync"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
)

// UserIdentity resolves and caches the signed-in user for one session.
type UserIdentity struct {
	remote repository.PlaceRemote
	tokens repository.TokenProvider
	logger *slog.Logger

	mu    sync.Mutex
	user  *entity.User
	epoch uint64 // bumped by Forget
}

// NewUserIdentity creates an identity resolver backed by GET /users/me
func NewUserIdentity(remote repository.PlaceRemote, tokens repository.TokenProvider, logger *slog.Logger) *UserIdentity {
	return &UserIdentity{
		remote: remote,
		tokens: tokens,
		logger: logger,
	}
}

// Current returns the cached user or fetches it with the current token.
// Without a token there is no user, cached or not.
func (i *UserIdentity) Current(ctx context.Context) (entity.User, error) {
	token, err := requireToken(ctx, i.tokens)
	if err != nil {
		return entity.User{}, err
	}

	i.mu.Lock()
	cached := i.user
	epoch := i.epoch
	i.mu.Unlock()
	if cached != nil {
		return *cached, nil
	}

	user, err := i.remote.CurrentUser(ctx, token)
	if err != nil {
		i.logger.Warn("[Session] Failed to fetch current user", slog.Any("error", err))

		return entity.User{}, domainerrors.Rekind(err, domainerrors.ErrUserFetch)
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// signed out while /users/me was in flight
	if i.epoch != epoch {
		i.logger.Debug("[Session] Discarding user fetched before sign-out", slog.String("user_id", user.ID))

		return entity.User{}, domainerrors.ErrSessionEnded
	}
	i.user = &user

	return user, nil
}

// Remember caches user as the signed-in account.
func (i *UserIdentity) Remember(user entity.User) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.user = &user
}

// Forget drops the cached account and invalidates fetches still in flight.
func (i *UserIdentity) Forget() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.user = nil
	i.epoch++
}

// requireToken returns the bearer token or ErrAuthRequired; no request is sent without one.
func requireToken(ctx context.Context, tokens repository.TokenProvider) (string, error) {
	if tokens == nil {
		return "", domainerrors.ErrAuthRequired
	}

	token, ok, err := tokens.Token(ctx)
	if err != nil {
		return "", domainerrors.ErrStorage.WithDetails(err.Error())
	}
	if !ok || token == "" {
		return "", domainerrors.ErrAuthRequired
	}

	return token, nil
}

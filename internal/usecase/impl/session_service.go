package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type sessionService struct {
	remote   repository.PlaceRemote
	store    repository.KeyValueStore
	identity *UserIdentity
	places   usecase.PlaceDirectory
	logger   *slog.Logger
}

// NewSessionService creates the session service
func NewSessionService(
	remote repository.PlaceRemote,
	store repository.KeyValueStore,
	identity *UserIdentity,
	places usecase.PlaceDirectory,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		remote:   remote,
		store:    store,
		identity: identity,
		places:   places,
		logger:   logger,
	}
}

// Login stores the token and the user JSON-encoded under their keys
func (s *sessionService) Login(ctx context.Context, email, password string) (entity.User, error) {
	token, user, err := s.remote.Login(ctx, email, password)
	if err != nil {
		var re *domainerrors.RemoteError
		if errors.As(err, &re) && re.Status == domainerrors.ErrInvalidCredentials.HTTPCode() {
			return entity.User{}, domainerrors.ErrInvalidCredentials
		}

		return entity.User{}, errors.Wrap(err, "failed to login")
	}

	if err := s.setJSON(ctx, repository.KeyToken, token); err != nil {
		return entity.User{}, err
	}
	if err := s.setJSON(ctx, repository.KeyUser, user); err != nil {
		return entity.User{}, err
	}

	s.identity.Remember(user)
	s.logger.Info("[Session] Signed in", slog.String("user_id", user.ID))

	return user, nil
}

// Logout forgets credentials and ends the directory session
func (s *sessionService) Logout(ctx context.Context) error {
	for _, key := range []string{repository.KeyToken, repository.KeyUser} {
		if err := s.store.Remove(ctx, key); err != nil {
			return domainerrors.ErrStorage.WithDetails(err.Error())
		}
	}

	s.identity.Forget()
	s.places.Reset()
	s.logger.Info("[Session] Signed out")

	return nil
}

// Current returns the signed-in user
func (s *sessionService) Current(ctx context.Context) (entity.User, error) {
	return s.identity.Current(ctx)
}

// Bootstrap fetches the user and the places side by side
func (s *sessionService) Bootstrap(ctx context.Context) (*usecase.BootstrapResult, error) {
	result := &usecase.BootstrapResult{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := s.identity.Current(gctx)
		if err != nil {
			// Anonymous browsing is allowed; the list still loads.
			result.UserError = err

			return nil
		}
		result.User = &user

		return nil
	})

	g.Go(func() error {
		places, err := s.places.ListAll(gctx)
		if err != nil {
			return err
		}
		result.Places = places

		return nil
	})

	if err := g.Wait(); err != nil {
		return result, err
	}

	return result, nil
}

func (s *sessionService) setJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.store.Set(ctx, key, string(raw)); err != nil {
		return domainerrors.ErrStorage.WithDetails(err.Error())
	}

	return nil
}

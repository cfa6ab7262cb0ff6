package impl

import (
	"context"
	"fmt"
	"log/slog"

	"placebook/internal/domain/entity"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/repository"
	"placebook/internal/domain/service"
	"placebook/internal/usecase"

	"github.com/pkg/errors"
)

type accountService struct {
	users  repository.UserStore
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger
}

// NewAccountService creates the login service of the development backend
func NewAccountService(
	users repository.UserStore,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, hash, err := s.users.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, domainerrors.ErrInvalidCredentials
		}

		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !s.hasher.Check(password, hash) {
		s.logger.Warn("[Account] Password mismatch", slog.String("user_id", user.ID))

		return "", nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return token, user, nil
}

func (s *accountService) Profile(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrAuthRequired.WithDetails("account no longer exists")
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

package memory

import (
	"context"
	"strings"

	"placebook/config"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/repository"
	"placebook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type account struct {
	user         entity.User
	passwordHash string
}

// userStore is read-only once seeded
type userStore struct {
	byID    map[string]*account
	byEmail map[string]*account
}

// NewUserStore seeds accounts from config, hashing their passwords
func NewUserStore(users []config.BackendUser, hasher service.PasswordHasher) (repository.UserStore, error) {
	s := &userStore{
		byID:    make(map[string]*account, len(users)),
		byEmail: make(map[string]*account, len(users)),
	}

	for _, u := range users {
		email := normalizeEmail(u.Email)
		if email == "" {
			return nil, errors.Errorf("seeded user %q has no email", u.Name)
		}
		if _, dup := s.byEmail[email]; dup {
			return nil, errors.Errorf("duplicate seeded email %s", email)
		}

		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "hash password of %s", email)
		}

		id := u.ID
		if id == "" {
			id = uuid.NewString()
		}

		acc := &account{
			user: entity.User{
				ID:    id,
				Name:  u.Name,
				Email: email,
				Role:  u.Role,
			},
			passwordHash: hash,
		}
		s.byID[id] = acc
		s.byEmail[email] = acc
	}

	return s, nil
}

func (s *userStore) FindUserByID(_ context.Context, id string) (*entity.User, error) {
	acc, ok := s.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := acc.user

	return &user, nil
}

func (s *userStore) FindCredentialsByEmail(_ context.Context, email string) (*entity.User, string, error) {
	acc, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, "", repository.ErrUserNotFound
	}
	user := acc.user

	return &user, acc.passwordHash, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Package auth provides token handling for both sides of the places service:
// bearer token issuing for the development backend and token supply for the client.
package auth

import (
	"time"

	"placebook/config"
	domainerrors "placebook/internal/domain/errors"
	"placebook/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// jwtService signs HS256 tokens with the backend secret.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates the token service of the development backend
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Backend == nil || cfg.Backend.SecretKey == "" {
		return nil, errors.New("backend secret key must be provided")
	}

	ttl := cfg.Backend.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &jwtService{
		secret: []byte(cfg.Backend.SecretKey),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token whose subject is userID
func (s *jwtService) Issue(userID, role string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}

	now := s.now()
	claims := service.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Validate checks signature and expiry; every failure is ErrAuthRequired
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, domainerrors.ErrAuthRequired.WithDetails(err.Error())
	}
	if !token.Valid || claims.UserID() == "" {
		return nil, domainerrors.ErrAuthRequired.WithDetails("token carries no subject")
	}

	return claims, nil
}

// TTL returns the lifetime of issued tokens
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims of a bearer token issued by the development backend.
// The subject is the user id.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject of the token
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService issues and validates bearer tokens.
type TokenService interface {
	// Issue signs a token for userID that expires after the configured TTL.
	Issue(userID, role string) (string, error)

	// Validate parses tokenString and returns its claims.
	Validate(tokenString string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}

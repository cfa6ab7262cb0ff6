package middleware

import (
	"strings"

	"placebook/internal/delivery/api/response"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRole   = "role"
)

// AuthMiddleware validates the bearer token of protected routes.
type AuthMiddleware struct {
	tokens service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid "Bearer <token>" header and
// puts the caller's id and role on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokens.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}
		if claims.UserID() == "" {
			return response.Unauthorized(c, "User ID missing from token")
		}

		c.Set(contextKeyUserID, claims.UserID())
		c.Set(contextKeyRole, claims.Role)

		return next(c)
	}
}

// GetUserID returns the authenticated user id. It must be used after Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(contextKeyUserID).(string)

	return userID, ok && userID != ""
}

// GetActor returns the authenticated caller as a user carrying id and role
func GetActor(c echo.Context) (entity.User, bool) {
	userID, ok := GetUserID(c)
	if !ok {
		return entity.User{}, false
	}
	role, _ := c.Get(contextKeyRole).(string)

	return entity.User{ID: userID, Role: role}, true
}

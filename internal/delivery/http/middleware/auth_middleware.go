package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	sessionTokens service.SessionTokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionTokens service.SessionTokenService) *AuthMiddleware {
	return &AuthMiddleware{sessionTokens: sessionTokens}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return err
		}
		if claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
		}

		// Set user info on the context for handlers to use
		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)

		return next(c)
	}
}

// AuthenticateOptional validates the access token when one is present but
// lets anonymous requests through. Download authorization accepts either a
// logged-in owner or a bearer of a download token, so the route cannot
// demand a session outright.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return err
		}
		if claims != nil {
			c.Set("userID", claims.UserID)
			c.Set("userEmail", claims.Email)
		}

		return next(c)
	}
}

// claimsFromRequest returns nil claims when no Authorization header is present.
func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token format, must be Bearer token")
	}

	claims, err := m.sessionTokens.ValidateToken(tokenString)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
	}

	return claims, nil
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT access tokens.
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// SessionTokenService defines the interface for generating and validating the
// JWTs that back authenticated browser sessions. These are unrelated to the
// credential tokens handled by TokenService.
type SessionTokenService interface {
	// GenerateAccessToken creates a new signed access token for a user.
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}

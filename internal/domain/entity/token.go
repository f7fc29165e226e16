package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenType classifies single-purpose credential tokens. The type is part of
// the credential: a secret is only valid when presented together with the
// type it was issued for.
type TokenType string

const (
	// TokenTypeVerification proves control of an email address at signup.
	TokenTypeVerification TokenType = "VERIFICATION"
	// TokenTypeReset authorizes a password reset.
	TokenTypeReset TokenType = "RESET"
	// TokenTypeDownload grants access to the files of one paid order.
	TokenTypeDownload TokenType = "DOWNLOAD"
)

// TTL returns the validity window for tokens of this type.
func (t TokenType) TTL() time.Duration {
	switch t {
	case TokenTypeVerification:
		return 24 * time.Hour
	case TokenTypeReset:
		return time.Hour
	case TokenTypeDownload:
		return 7 * 24 * time.Hour
	default:
		return 0
	}
}

// Valid reports whether the type is one of the three known kinds.
func (t TokenType) Valid() bool {
	switch t {
	case TokenTypeVerification, TokenTypeReset, TokenTypeDownload:
		return true
	}
	return false
}

// Token is a single-purpose, expiring credential. VERIFICATION and RESET
// tokens are consumed (deleted) when used; DOWNLOAD tokens stay live until
// expiry and may be presented many times.
type Token struct {
	ID        uuid.UUID
	Secret    string     // Random hex secret, unique across all tokens.
	Type      TokenType  // Purpose of the token.
	Email     string     // Address the token was issued to.
	UserID    *uuid.UUID // Owning account, if one existed at issuance.
	OrderID   *uuid.UUID // Set for DOWNLOAD tokens; scopes the grant to one order.
	ExpiresAt time.Time  // Instant after which the token is dead.
	CreatedAt time.Time
}

// Expired reports whether the token is past its validity window at the given
// instant. A token expiring exactly at now is already expired.
func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

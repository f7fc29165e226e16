package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTokenNotFound is a domain-specific error returned when a token is not found.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository defines the standard operations for credential token persistence.
type TokenRepository interface {
	// Create persists a new token to the storage.
	Create(ctx context.Context, token *entity.Token) error

	// FindBySecretAndType retrieves a token by its secret and type.
	// Returns ErrTokenNotFound when no such token exists; expiry is not
	// checked here, that is the caller's concern.
	FindBySecretAndType(ctx context.Context, secret string, tokenType entity.TokenType) (*entity.Token, error)

	// DeleteBySecretAndType removes a token by its secret and type and
	// reports whether a row was actually deleted. The deleted flag is what
	// makes consumption exactly-once under concurrency.
	DeleteBySecretAndType(ctx context.Context, secret string, tokenType entity.TokenType) (bool, error)

	// DeleteByTypeAndUserID removes all tokens of one type belonging to a user.
	DeleteByTypeAndUserID(ctx context.Context, tokenType entity.TokenType, userID uuid.UUID) error

	// DeleteByUserID removes every token belonging to a user, regardless of type.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteByOrderIDs removes all tokens scoped to any of the given orders.
	DeleteByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error

	// ClaimGuestDownloadTokensByEmail assigns ownerless DOWNLOAD tokens issued
	// to the email address to the given user. Tokens that already have an
	// owner are left untouched. Returns the number of tokens claimed.
	ClaimGuestDownloadTokensByEmail(ctx context.Context, email string, userID uuid.UUID) (int64, error)

	// DeleteExpired removes all tokens whose expiry is at or before now.
	// Returns the number of tokens removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

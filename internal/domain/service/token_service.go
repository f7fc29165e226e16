package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// IssueTokenInput carries the attribution for a newly issued token.
type IssueTokenInput struct {
	Email   string     // Address the token is issued to.
	UserID  *uuid.UUID // Owning account, when one exists.
	OrderID *uuid.UUID // Required for DOWNLOAD tokens, nil otherwise.
}

// TokenService defines the interface for the credential token lifecycle.
// Every method takes the TokenRepository to run against so callers can pass
// a transaction-bound repository and make issuance or consumption atomic
// with the surrounding effect.
type TokenService interface {
	// Issue creates and persists a new token of the given type. The secret
	// is generated internally and the expiry derives from the type's TTL.
	Issue(ctx context.Context, tokens repository.TokenRepository, tokenType entity.TokenType, input IssueTokenInput) (*entity.Token, error)

	// Verify checks a presented secret without consuming it. Unknown,
	// expired and wrong-type secrets all fail the same way, with
	// domainerrors.ErrTokenInvalid.
	Verify(ctx context.Context, tokens repository.TokenRepository, secret string, tokenType entity.TokenType) (*entity.Token, error)

	// Consume verifies a secret and deletes it in one step. At most one
	// concurrent caller succeeds for a given secret; the rest get
	// domainerrors.ErrTokenInvalid.
	Consume(ctx context.Context, tokens repository.TokenRepository, secret string, tokenType entity.TokenType) (*entity.Token, error)
}

package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExternalAccountNotFound is returned when no linked identity matches.
var ErrExternalAccountNotFound = errors.New("external account not found")

// ExternalAccountRepository defines the standard operations for OAuth identity links.
type ExternalAccountRepository interface {
	// Create persists a new external account link.
	Create(ctx context.Context, account *entity.ExternalAccount) error

	// FindByProvider retrieves a link by provider name and the provider's subject ID.
	FindByProvider(ctx context.Context, provider, providerUserID string) (*entity.ExternalAccount, error)

	// DeleteByUserID removes every external account link of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

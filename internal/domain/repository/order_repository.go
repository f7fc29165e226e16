package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderItemNotFound = errors.New("order item not found")
)

// OrderRepository defines the standard operations for order persistence.
// Orders are append-only records; nothing here deletes them outside of the
// demo account reset.
type OrderRepository interface {
	// Create persists a new order together with its item snapshots.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByPaymentSessionID retrieves the order recorded for a payment
	// provider session, if any. Used for webhook idempotency.
	FindByPaymentSessionID(ctx context.Context, sessionID string) (*entity.Order, error)

	// FindPaidByUserID retrieves all paid orders of a user, newest first,
	// items included.
	FindPaidByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindItemWithOrder retrieves one order item together with its parent order.
	FindItemWithOrder(ctx context.Context, itemID uuid.UUID) (*entity.OrderItem, *entity.Order, error)

	// FindPurchasedProductIDs returns the distinct product IDs across all
	// paid orders of a user.
	FindPurchasedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ClaimGuestOrdersByEmail assigns ownerless orders placed with the email
	// address to the given user. Orders that already have an owner are left
	// untouched. Returns the number of orders claimed.
	ClaimGuestOrdersByEmail(ctx context.Context, email string, userID uuid.UUID) (int64, error)

	// AnonymizeByUserID blanks the order email on every order of the user.
	// Ownership and purchase records stay intact.
	AnonymizeByUserID(ctx context.Context, userID uuid.UUID, placeholderEmail string) error

	// FindIDsByUserID returns the IDs of every order belonging to the user.
	FindIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// DeleteByUserID removes a user's orders and their items. Only the demo
	// account reset may call this.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PaymentConfirmedInput is the normalized payload of a payment provider's
// "checkout completed" webhook.
type PaymentConfirmedInput struct {
	PaymentSessionID string          `json:"payment_session_id" validate:"required"` // Provider session ID, the idempotency key.
	PaymentID        string          `json:"payment_id"`                             // Provider payment/charge ID.
	Email            string          `json:"email" validate:"required,email"`        // Buyer email reported by the provider.
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	Items            []PurchasedItem `json:"items" validate:"required,min=1,dive"`
}

// PurchasedItem is one line of a confirmed payment.
type PurchasedItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=0"`
}

// --- Output DTOs ---

// PaymentConfirmedOutput reports the recorded order.
type PaymentConfirmedOutput struct {
	Order          *entity.Order
	AlreadyHandled bool // True when the session had been processed before.
}

// PurchaseUsecase defines the interface for turning confirmed payments into
// orders and entitlements.
type PurchaseUsecase interface {
	// OnPaymentConfirmed records the order with item snapshots, issues the
	// DOWNLOAD token and sends the confirmation mail. Safe to call more
	// than once for the same payment session.
	OnPaymentConfirmed(ctx context.Context, input *PaymentConfirmedInput) (*PaymentConfirmedOutput, error)
}

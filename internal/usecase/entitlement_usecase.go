package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AuthorizeDownloadInput identifies one order item and the caller's claim to
// it. Exactly one of UserID or DownloadSecret is normally set; when both are
// present either path may grant.
type AuthorizeDownloadInput struct {
	OrderItemID    uuid.UUID
	UserID         *uuid.UUID // Authenticated caller, if any.
	DownloadSecret string     // DOWNLOAD token secret, if presented.
}

// --- Output DTOs ---

// DownloadGrant is a successful download authorization.
type DownloadGrant struct {
	URL         string // Time-limited signed URL for the file.
	ProductName string
	FileKey     string
}

// PurchaseSummary is one paid order in a user's purchase history.
type PurchaseSummary struct {
	Order *entity.Order
}

// EntitlementUsecase defines the interface for ownership and download access
// decisions.
type EntitlementUsecase interface {
	// ListPurchasedProductIDs returns the distinct product IDs a user owns
	// across all paid orders. A non-empty candidates list narrows the result
	// to that subset.
	ListPurchasedProductIDs(ctx context.Context, userID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error)

	// ListPurchases returns a user's paid orders, newest first.
	ListPurchases(ctx context.Context, userID uuid.UUID) ([]*PurchaseSummary, error)

	// AuthorizeDownload grants a signed download URL when the caller owns
	// the item's order or presents a live DOWNLOAD token scoped to it.
	AuthorizeDownload(ctx context.Context, input *AuthorizeDownloadInput) (*DownloadGrant, error)

	// ResolveDownloadToken verifies a DOWNLOAD secret and returns the order
	// it grants access to, items included.
	ResolveDownloadToken(ctx context.Context, secret string) (*entity.Order, error)
}

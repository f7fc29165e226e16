package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order records a completed (or pending) purchase. Guest orders carry a nil
// UserID and are attributed by OrderEmail until an account claims them.
// Orders are never deleted, not even when their owner's account is; they are
// anonymized instead.
type Order struct {
	ID               uuid.UUID
	OrderNumber      string     // Human-facing reference, e.g. ORD123456789.
	UserID           *uuid.UUID // Owning account. Nil for unclaimed guest orders.
	OrderEmail       string     // Purchase email, used for guest attribution.
	IsPaid           bool
	PaidAt           *time.Time
	TotalAmount      int64  // Total in the smallest currency unit.
	PaymentSessionID string // Provider checkout session ID, unique per order.
	PaymentID        string // Provider payment/charge ID.
	Items            []OrderItem
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem is a point-in-time snapshot of a purchased product. Name and
// price are copied at purchase so later catalog edits never change what the
// receipt says.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	ProductName string // Name at time of purchase.
	Price       int64  // Unit price at time of purchase.
	Quantity    int
	CreatedAt   time.Time
}

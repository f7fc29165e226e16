package service

import (
	"context"
)

// OrderCompletedEvent represents a finalized purchase announced to downstream
// consumers (analytics, fulfillment dashboards). Published after commit, best
// effort only.
type OrderCompletedEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string   `json:"order_id"`
	OrderNumber string   `json:"order_number"`
	OrderEmail  string   `json:"order_email"`
	TotalAmount int64    `json:"total_amount"`
	ProductIDs  []string `json:"product_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderCompleted publishes an order completion event for async processing
	PublishOrderCompleted(ctx context.Context, event *OrderCompletedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

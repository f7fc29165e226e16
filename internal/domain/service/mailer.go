package service

import (
	"context"
)

// OrderConfirmation carries everything the confirmation mail template needs.
type OrderConfirmation struct {
	OrderNumber string
	TotalAmount int64
	Items       []OrderConfirmationItem
	DownloadURL string // Tokenized download link for the order.
}

// OrderConfirmationItem is one purchased line in the confirmation mail.
type OrderConfirmationItem struct {
	ProductName string
	Price       int64
	Quantity    int
}

// Mailer defines the interface for transactional email delivery.
// Callers decide whether a failed send aborts the surrounding operation;
// signup and reset mails do, order confirmations do not.
type Mailer interface {
	// SendVerification sends the address-verification mail with its tokenized link.
	SendVerification(ctx context.Context, to, verifyURL string) error

	// SendPasswordReset sends the password reset mail with its tokenized link.
	SendPasswordReset(ctx context.Context, to, resetURL string) error

	// SendOrderConfirmation sends the purchase receipt with the download link.
	SendOrderConfirmation(ctx context.Context, to string, confirmation *OrderConfirmation) error
}

package service

import (
	"context"
)

// SignedURLService defines the interface for issuing short-lived download
// URLs for objects in the model file bucket.
type SignedURLService interface {
	// SignedDownloadURL returns a time-limited URL for the object key.
	SignedDownloadURL(ctx context.Context, fileKey string) (string, error)

	// Close releases the underlying bucket handle.
	Close() error
}

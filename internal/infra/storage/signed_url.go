// Package storage issues short-lived download URLs for the model file bucket.
package storage

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// defaultSignedURLTTL applies when no TTL is configured.
const defaultSignedURLTTL = 15 * time.Minute

// blobSignedURLService implements service.SignedURLService with a Go CDK bucket.
type blobSignedURLService struct {
	bucket *blob.Bucket
	ttl    time.Duration
}

// NewSignedURLService opens the configured bucket. The URL scheme picks the
// backing store (s3://, file://), so local development needs no cloud account.
func NewSignedURLService(ctx context.Context, cfg *config.Config) (service.SignedURLService, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage bucket")
	}

	ttl := cfg.Storage.SignedURLTTL
	if ttl <= 0 {
		ttl = defaultSignedURLTTL
	}

	return &blobSignedURLService{bucket: bucket, ttl: ttl}, nil
}

// SignedDownloadURL returns a time-limited URL for the object key.
func (s *blobSignedURLService) SignedDownloadURL(ctx context.Context, fileKey string) (string, error) {
	if fileKey == "" {
		return "", errors.New("file key must not be empty")
	}

	url, err := s.bucket.SignedURL(ctx, fileKey, &blob.SignedURLOptions{
		Expiry: s.ttl,
		Method: "GET",
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to sign download url")
	}

	return url, nil
}

// Close releases the underlying bucket handle.
func (s *blobSignedURLService) Close() error {
	return s.bucket.Close()
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a downloadable 3D model in the catalog.
type Product struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Price        int64  // Price in the smallest currency unit.
	ImageURL     string // Preview image.
	FileKey      string // Object key of the downloadable archive in the bucket.
	DisplayOrder int    // Sort position in the catalog.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

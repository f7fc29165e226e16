package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenModel mirrors the 'tokens' table. The secret is unique across all
// tokens regardless of type; lookups always pair secret with type.
type TokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Secret    string     `gorm:"type:varchar(128);not null;uniqueIndex"`
	Type      string     `gorm:"type:varchar(20);not null;index"`
	Email     string     `gorm:"type:varchar(255);not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}

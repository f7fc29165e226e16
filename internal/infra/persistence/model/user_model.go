package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
// The email unique index is partial (WHERE is_deleted = false) so an address
// freed by account deletion can be registered again.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email          string    `gorm:"type:varchar(255);not null;index:idx_users_email_live,unique,where:is_deleted = false"`
	Name           string    `gorm:"type:varchar(100)"`
	HashedPassword string    `gorm:"type:varchar(255)"`
	AvatarURL      string    `gorm:"type:text"`
	EmailVerified  *time.Time
	IsDeleted      bool `gorm:"not null;default:false"`
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	ExternalAccounts []ExternalAccountModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ExternalAccountModel mirrors the 'external_accounts' table. One row per
// linked OAuth identity.
type ExternalAccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_external_accounts_provider_subject"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_external_accounts_provider_subject"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ExternalAccountModel) TableName() string {
	return "external_accounts"
}

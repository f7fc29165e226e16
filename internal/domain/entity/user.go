// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnonymizedName replaces the display name of a deleted account.
const AnonymizedName = "Deleted User"

// User is an account in the storefront. Guests have no User at all; their
// purchases are attributed by email and claimed later (see Order.UserID).
type User struct {
	ID             uuid.UUID  // The unique identifier for the account.
	Email          string     // Login identifier; unique among non-deleted accounts.
	Name           string     // Display name.
	HashedPassword string     // bcrypt hash. Empty for OAuth-only accounts.
	AvatarURL      string     // Optional profile image URL.
	EmailVerified  *time.Time // When the address was verified. Nil blocks credentials login.
	IsDeleted      bool       // True once the account has been anonymized.
	DeletedAt      *time.Time // When the anonymization happened.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanLoginWithPassword reports whether a credentials login may even be
// attempted against this account. The password hash comparison itself is the
// caller's job; this gate covers account state only.
func (u *User) CanLoginWithPassword() bool {
	return !u.IsDeleted && u.EmailVerified != nil && u.HashedPassword != ""
}

// ExternalAccount links a User to an OAuth identity (e.g. a Google account).
// An account created through OAuth is implicitly email-verified.
type ExternalAccount struct {
	ID             uuid.UUID // The unique ID of this link record.
	UserID         uuid.UUID // The User this external identity belongs to.
	Provider       string    // Provider name, e.g. "google".
	ProviderUserID string    // The provider's stable subject identifier.
	CreatedAt      time.Time
}

// ProviderTypeGoogle is the only OAuth provider the storefront supports.
const ProviderTypeGoogle = "google"

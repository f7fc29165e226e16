// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleSignInInput carries the ID token obtained from Google Sign-In.
type GoogleSignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// VerifyEmailInput carries the secret from the verification mail link. The
// secret may arrive as a query parameter instead, so it is not required here.
type VerifyEmailInput struct {
	Secret string `json:"token"`
}

// RequestPasswordResetInput identifies the account asking for a reset.
type RequestPasswordResetInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmPasswordResetInput carries the reset secret and the new password.
type ConfirmPasswordResetInput struct {
	Secret      string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

// UpdateProfileInput carries profile fields to change. Nil fields are left as is.
type UpdateProfileInput struct {
	UserID    uuid.UUID `json:"-"`
	Name      *string   `json:"name,omitempty" validate:"omitempty,max=100"`
	AvatarURL *string   `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// --- Output DTOs ---

// SignUpOutput returns the newly created user's basic information.
type SignUpOutput struct {
	User *entity.User
}

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// SignUp registers a new account, claims any guest purchases made with
	// the same email, and sends the verification mail.
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)

	// Login authenticates email/password credentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// SignInWithGoogle logs in via a Google ID token, creating the account
	// on first sign-in.
	SignInWithGoogle(ctx context.Context, input *GoogleSignInInput) (*LoginOutput, error)

	// VerifyEmail consumes a VERIFICATION token and marks the address verified.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error

	// RequestPasswordReset issues a RESET token and mails the reset link.
	// Succeeds silently for unknown addresses.
	RequestPasswordReset(ctx context.Context, input *RequestPasswordResetInput) error

	// ConfirmPasswordReset consumes a RESET token and sets the new password.
	ConfirmPasswordReset(ctx context.Context, input *ConfirmPasswordResetInput) error

	// GetProfile returns the current account data.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile changes display name and avatar.
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// EmailExists reports whether a non-deleted account owns the address.
	EmailExists(ctx context.Context, email string) (bool, error)

	// DeleteAccount anonymizes the account and purges its credentials while
	// keeping the purchase records.
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

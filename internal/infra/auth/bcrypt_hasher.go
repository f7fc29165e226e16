// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	strength := config.PasswordStrengthConfig{MinLength: 8}
	if cfg != nil {
		if cfg.Auth != nil {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.PasswordStrength != nil {
			strength = *cfg.PasswordStrength
		}
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if strength.MinLength <= 0 {
		strength.MinLength = 8
	}

	return &bcryptHasher{
		cost:     cost,
		strength: strength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.strength.MinLength {
		return errors.Errorf("password must be at least %d characters", h.strength.MinLength)
	}
	if h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength {
		return errors.Errorf("password must be at most %d characters", h.strength.MaxLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		return errors.New("password must contain an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		return errors.New("password must contain a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasDigit {
		return errors.New("password must contain a digit")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		return errors.New("password must contain a special character")
	}

	return nil
}

package auth

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testHasherConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
		},
	}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())
	password := "StrongPass123"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, hash))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123", hash))

	// Test empty password
	assert.False(t, hasher.Check("", hash))

	// Test with invalid hash
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	// Test valid passwords
	validPasswords := []string{
		"StrongPass123",
		"MySecurePass1",
		"ComplexSecret9",
		"ValidPhrase2024",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	// Test invalid passwords with specific error cases
	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"123", "must be at least 8 characters"},
		{"PASSWORD123", "must contain a lowercase letter"},
		{"password123", "must contain an uppercase letter"},
		{"PasswordABC", "must contain a digit"},
	}

	for _, tc := range testCases {
		err := hasher.ValidatePasswordStrength(tc.password)
		assert.Error(t, err, "Expected error for password: %s", tc.password)
		assert.Contains(t, err.Error(), tc.expectedErr, "Error message should contain: %s", tc.expectedErr)
	}
}

func TestBcryptHasher_RequireSpecial(t *testing.T) {
	cfg := testHasherConfig()
	cfg.PasswordStrength.RequireSpecial = true
	hasher := NewBcryptHasher(cfg)

	err := hasher.ValidatePasswordStrength("Password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must contain a special character")

	assert.NoError(t, hasher.ValidatePasswordStrength("Password123!"))
}

func TestBcryptHasher_MaxLength(t *testing.T) {
	cfg := testHasherConfig()
	cfg.PasswordStrength.MaxLength = 16
	hasher := NewBcryptHasher(cfg)

	err := hasher.ValidatePasswordStrength("ThisPasswordIsWayTooLong123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be at most 16 characters")
}

func TestBcryptHasher_WithConfiguredCost(t *testing.T) {
	cfg := testHasherConfig()
	cfg.Auth.BcryptCost = 6 // Lower cost for faster testing
	hasher := NewBcryptHasher(cfg)

	password := "StrongPass123"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Verify the hash uses the configured cost
	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	// Only the minimum length applies without a configured policy
	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
}

func TestBcryptHasher_UnicodePassword(t *testing.T) {
	hasher := NewBcryptHasher(testHasherConfig())

	err := hasher.ValidatePasswordStrength("Pässphräse123")
	assert.NoError(t, err)
}

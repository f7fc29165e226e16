package google

import (
	"context"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func testAuthService() *AuthServiceImpl {
	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}

	return NewAuthService(cfg, slog.Default()).(*AuthServiceImpl)
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:  "https://accounts.google.com",
		Subject: "google-user-123",
		Claims: map[string]any{
			"email":          "test@example.com",
			"email_verified": true,
			"name":           "Test User",
			"picture":        "https://example.com/avatar.png",
		},
	}
}

func TestAuthService_VerifyIDToken(t *testing.T) {
	authService := testAuthService()
	authService.validate = func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "raw-token", idToken)
		assert.Equal(t, "test_client_id", audience)

		return validPayload(), nil
	}

	oauthUser, err := authService.VerifyIDToken(context.Background(), "raw-token")

	assert.NoError(t, err)
	assert.Equal(t, "google-user-123", oauthUser.ID)
	assert.Equal(t, entity.ProviderTypeGoogle, oauthUser.Provider)
	assert.Equal(t, "test@example.com", oauthUser.Email)
	assert.Equal(t, "Test User", oauthUser.Name)
	assert.Equal(t, "https://example.com/avatar.png", oauthUser.AvatarURL)
	assert.True(t, oauthUser.EmailVerified)
}

func TestAuthService_VerifyIDToken_ValidationFailure(t *testing.T) {
	authService := testAuthService()
	authService.validate = func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
		return nil, errors.New("signature mismatch")
	}

	oauthUser, err := authService.VerifyIDToken(context.Background(), "raw-token")

	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "invalid ID token")
}

func TestAuthService_VerifyIDToken_WrongIssuer(t *testing.T) {
	authService := testAuthService()
	authService.validate = func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
		payload := validPayload()
		payload.Issuer = "https://evil.example.com"

		return payload, nil
	}

	oauthUser, err := authService.VerifyIDToken(context.Background(), "raw-token")

	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "invalid issuer")
}

func TestAuthService_VerifyIDToken_MissingEmail(t *testing.T) {
	authService := testAuthService()
	authService.validate = func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
		payload := validPayload()
		delete(payload.Claims, "email")

		return payload, nil
	}

	oauthUser, err := authService.VerifyIDToken(context.Background(), "raw-token")

	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "no email claim")
}

func TestAuthService_VerifyIDToken_UnverifiedEmail(t *testing.T) {
	authService := testAuthService()
	authService.validate = func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
		payload := validPayload()
		payload.Claims["email_verified"] = false

		return payload, nil
	}

	oauthUser, err := authService.VerifyIDToken(context.Background(), "raw-token")

	assert.Error(t, err)
	assert.Nil(t, oauthUser)
	assert.Contains(t, err.Error(), "not verified")
}

func TestAuthService_VerifyIDToken_PlainIssuerAccepted(t *testing.T) {
	authService := testAuthService()
	authService.validate = func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error) {
		payload := validPayload()
		payload.Issuer = "accounts.google.com"

		return payload, nil
	}

	oauthUser, err := authService.VerifyIDToken(context.Background(), "raw-token")

	assert.NoError(t, err)
	assert.NotNil(t, oauthUser)
}

func TestAuthService_GetProvider(t *testing.T) {
	authService := testAuthService()

	assert.Equal(t, entity.ProviderTypeGoogle, authService.GetProvider())
}

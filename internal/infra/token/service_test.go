package token

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTokenService(t *testing.T) (service.TokenService, *mockRepo.MockTokenRepository) {
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(ServiceParams{Logger: logger})

	return svc, tokenRepo
}

func TestTokenService_Issue_Verification(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()
	userID := uuid.New()

	var persisted *entity.Token
	tokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Token")).
		Run(func(ctx context.Context, token *entity.Token) {
			persisted = token
		}).
		Return(nil)

	before := time.Now()
	token, err := svc.Issue(ctx, tokenRepo, entity.TokenTypeVerification, service.IssueTokenInput{
		Email:  "test@example.com",
		UserID: &userID,
	})

	require.NoError(t, err)
	require.NotNil(t, token)
	assert.Same(t, token, persisted)
	assert.Equal(t, entity.TokenTypeVerification, token.Type)
	assert.Equal(t, "test@example.com", token.Email)
	assert.Equal(t, &userID, token.UserID)
	// 32 random bytes, hex encoded.
	assert.Len(t, token.Secret, 64)
	assert.WithinDuration(t, before.Add(24*time.Hour), token.ExpiresAt, 5*time.Second)
}

func TestTokenService_Issue_SecretsAreUnique(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()

	tokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Token")).
		Return(nil).
		Twice()

	first, err := svc.Issue(ctx, tokenRepo, entity.TokenTypeReset, service.IssueTokenInput{Email: "a@example.com"})
	require.NoError(t, err)
	second, err := svc.Issue(ctx, tokenRepo, entity.TokenTypeReset, service.IssueTokenInput{Email: "a@example.com"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Secret, second.Secret)
}

func TestTokenService_Issue_DownloadRequiresOrderScope(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	token, err := svc.Issue(context.Background(), tokenRepo, entity.TokenTypeDownload, service.IssueTokenInput{
		Email: "guest@example.com",
	})

	assert.Error(t, err)
	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrInternalError))
}

func TestTokenService_Issue_UnknownType(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	token, err := svc.Issue(context.Background(), tokenRepo, entity.TokenType("BOGUS"), service.IssueTokenInput{})

	assert.Error(t, err)
	assert.Nil(t, token)
}

func TestTokenService_Verify_Success(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()
	stored := &entity.Token{
		ID:        uuid.New(),
		Secret:    "secret",
		Type:      entity.TokenTypeReset,
		Email:     "test@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokenRepo.EXPECT().
		FindBySecretAndType(ctx, "secret", entity.TokenTypeReset).
		Return(stored, nil)

	token, err := svc.Verify(ctx, tokenRepo, "secret", entity.TokenTypeReset)

	require.NoError(t, err)
	assert.Equal(t, stored, token)
}

func TestTokenService_Verify_EmptySecret(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	token, err := svc.Verify(context.Background(), tokenRepo, "", entity.TokenTypeReset)

	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestTokenService_Verify_UnknownSecret(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()
	tokenRepo.EXPECT().
		FindBySecretAndType(ctx, "missing", entity.TokenTypeVerification).
		Return(nil, repository.ErrTokenNotFound)

	token, err := svc.Verify(ctx, tokenRepo, "missing", entity.TokenTypeVerification)

	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()
	stored := &entity.Token{
		ID:        uuid.New(),
		Secret:    "secret",
		Type:      entity.TokenTypeDownload,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	tokenRepo.EXPECT().
		FindBySecretAndType(ctx, "secret", entity.TokenTypeDownload).
		Return(stored, nil)

	token, err := svc.Verify(ctx, tokenRepo, "secret", entity.TokenTypeDownload)

	assert.Nil(t, token)
	// Expired and unknown must be indistinguishable to the caller.
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestTokenService_Consume_Success(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()
	stored := &entity.Token{
		ID:        uuid.New(),
		Secret:    "secret",
		Type:      entity.TokenTypeVerification,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokenRepo.EXPECT().
		FindBySecretAndType(ctx, "secret", entity.TokenTypeVerification).
		Return(stored, nil)
	tokenRepo.EXPECT().
		DeleteBySecretAndType(ctx, "secret", entity.TokenTypeVerification).
		Return(true, nil)

	token, err := svc.Consume(ctx, tokenRepo, "secret", entity.TokenTypeVerification)

	require.NoError(t, err)
	assert.Equal(t, stored, token)
}

func TestTokenService_Consume_LostRace(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()
	stored := &entity.Token{
		ID:        uuid.New(),
		Secret:    "secret",
		Type:      entity.TokenTypeVerification,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tokenRepo.EXPECT().
		FindBySecretAndType(ctx, "secret", entity.TokenTypeVerification).
		Return(stored, nil)
	// Another caller's delete landed first; zero rows went away here.
	tokenRepo.EXPECT().
		DeleteBySecretAndType(ctx, "secret", entity.TokenTypeVerification).
		Return(false, nil)

	token, err := svc.Consume(ctx, tokenRepo, "secret", entity.TokenTypeVerification)

	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestTokenService_Consume_WrongType(t *testing.T) {
	svc, tokenRepo := createTestTokenService(t)

	ctx := context.Background()
	tokenRepo.EXPECT().
		FindBySecretAndType(ctx, "secret", entity.TokenTypeDownload).
		Return(nil, repository.ErrTokenNotFound)

	token, err := svc.Consume(ctx, tokenRepo, "secret", entity.TokenTypeDownload)

	assert.Nil(t, token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

// Package token implements the credential token lifecycle on top of the
// token repository. Secrets are high-entropy random strings; possession of
// the secret is the whole credential.
package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// secretByteLength is the entropy of a token secret before hex encoding.
const secretByteLength = 32

// credentialTokenService implements service.TokenService.
type credentialTokenService struct {
	logger *slog.Logger
}

// ServiceParams holds dependencies for the token service, injected by Fx.
type ServiceParams struct {
	fx.In

	Logger *slog.Logger
}

// NewService is the constructor for credentialTokenService.
func NewService(params ServiceParams) service.TokenService {
	return &credentialTokenService{logger: params.Logger}
}

func (srv *credentialTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newSecret draws a fresh random secret.
func newSecret() (string, error) {
	buf := make([]byte, secretByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for token secret")
	}

	return hex.EncodeToString(buf), nil
}

// Issue creates and persists a new token of the given type.
func (srv *credentialTokenService) Issue(ctx context.Context, tokens repository.TokenRepository, tokenType entity.TokenType, input service.IssueTokenInput) (*entity.Token, error) {
	if !tokenType.Valid() {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "unknown token type")
	}
	if tokenType == entity.TokenTypeDownload && input.OrderID == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "download token requires an order scope")
	}

	secret, err := newSecret()
	if err != nil {
		return nil, err
	}

	token := &entity.Token{
		Secret:    secret,
		Type:      tokenType,
		Email:     input.Email,
		UserID:    input.UserID,
		OrderID:   input.OrderID,
		ExpiresAt: time.Now().Add(tokenType.TTL()),
	}

	if err := tokens.Create(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to persist token")
	}

	srv.log(ctx).Debug("Issued token", slog.String("type", string(tokenType)), slog.Any("tokenID", token.ID))

	return token, nil
}

// Verify checks a presented secret without consuming it. Absent and expired
// secrets fail identically so a caller learns nothing about which it was.
func (srv *credentialTokenService) Verify(ctx context.Context, tokens repository.TokenRepository, secret string, tokenType entity.TokenType) (*entity.Token, error) {
	if secret == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "empty secret")
	}

	token, err := tokens.FindBySecretAndType(ctx, secret, tokenType)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unknown token")
		}

		return nil, errors.Wrap(err, "failed to look up token")
	}

	if token.Expired(time.Now()) {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token past expiry")
	}

	return token, nil
}

// Consume verifies a secret and deletes it in one step. The delete reports
// whether a row actually went away, so when two callers race over the same
// secret only the one whose delete landed wins.
func (srv *credentialTokenService) Consume(ctx context.Context, tokens repository.TokenRepository, secret string, tokenType entity.TokenType) (*entity.Token, error) {
	token, err := srv.Verify(ctx, tokens, secret, tokenType)
	if err != nil {
		return nil, err
	}

	deleted, err := tokens.DeleteBySecretAndType(ctx, secret, tokenType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete token on consume")
	}
	if !deleted {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token already consumed")
	}

	srv.log(ctx).Debug("Consumed token", slog.String("type", string(tokenType)), slog.Any("tokenID", token.ID))

	return token, nil
}

package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// Create persists a new token to the storage.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.Token) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Secret collision. With 256-bit secrets this never happens in
			// practice, but surface it as a retryable internal error.
			return domainerrors.NewDatabaseExecuteError(err, "token secret collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindBySecretAndType retrieves a token by its secret and type.
func (repo *tokenRepository) FindBySecretAndType(ctx context.Context, secret string, tokenType entity.TokenType) (*entity.Token, error) {
	var tokenM model.TokenModel

	if err := repo.db.WithContext(ctx).
		Where("secret = ? AND type = ?", secret, string(tokenType)).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by secret")
	}

	return toTokenDomain(&tokenM), nil
}

// DeleteBySecretAndType removes a token and reports whether a row was deleted.
func (repo *tokenRepository) DeleteBySecretAndType(ctx context.Context, secret string, tokenType entity.TokenType) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("secret = ? AND type = ?", secret, string(tokenType)).
		Delete(&model.TokenModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete token by secret")
	}

	return result.RowsAffected > 0, nil
}

// DeleteByTypeAndUserID removes all tokens of one type belonging to a user.
func (repo *tokenRepository) DeleteByTypeAndUserID(ctx context.Context, tokenType entity.TokenType, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("type = ? AND user_id = ?", string(tokenType), userID).
		Delete(&model.TokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete tokens by type and user")
	}

	return nil
}

// DeleteByUserID removes every token belonging to a user, regardless of type.
func (repo *tokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.TokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete tokens by user")
	}

	return nil
}

// DeleteByOrderIDs removes all tokens scoped to any of the given orders.
func (repo *tokenRepository) DeleteByOrderIDs(ctx context.Context, orderIDs []uuid.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Delete(&model.TokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete tokens by order ids")
	}

	return nil
}

// ClaimGuestDownloadTokensByEmail assigns ownerless DOWNLOAD tokens issued to
// the email address to the given user.
func (repo *tokenRepository) ClaimGuestDownloadTokensByEmail(ctx context.Context, email string, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where("email = ? AND type = ? AND user_id IS NULL", email, string(entity.TokenTypeDownload)).
		Update("user_id", userID)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to claim guest download tokens")
	}

	return result.RowsAffected, nil
}

// DeleteExpired removes all tokens whose expiry is at or before now.
func (repo *tokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.TokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM TokenModel to a domain Token entity.
func toTokenDomain(data *model.TokenModel) *entity.Token {
	if data == nil {
		return nil
	}

	return &entity.Token{
		ID:        data.ID,
		Secret:    data.Secret,
		Type:      entity.TokenType(data.Type),
		Email:     data.Email,
		UserID:    data.UserID,
		OrderID:   data.OrderID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromTokenDomain converts a domain Token entity to a GORM TokenModel.
func fromTokenDomain(data *entity.Token) *model.TokenModel {
	if data == nil {
		return nil
	}

	return &model.TokenModel{
		ID:        data.ID,
		Secret:    data.Secret,
		Type:      string(data.Type),
		Email:     data.Email,
		UserID:    data.UserID,
		OrderID:   data.OrderID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

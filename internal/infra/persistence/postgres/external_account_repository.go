package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// externalAccountRepository implements the repository.ExternalAccountRepository interface.
type externalAccountRepository struct {
	db *gorm.DB
}

// NewExternalAccountRepository is the constructor for externalAccountRepository.
func NewExternalAccountRepository(db *gorm.DB) repository.ExternalAccountRepository {
	return &externalAccountRepository{
		db: db,
	}
}

// Create persists a new external account link.
func (repo *externalAccountRepository) Create(ctx context.Context, account *entity.ExternalAccount) error {
	accountM := fromExternalAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("external account already linked")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create external account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt

	return nil
}

// FindByProvider retrieves a link by provider name and the provider's subject ID.
func (repo *externalAccountRepository) FindByProvider(ctx context.Context, provider, providerUserID string) (*entity.ExternalAccount, error) {
	var accountM model.ExternalAccountModel

	if err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExternalAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find external account by provider")
	}

	return toExternalAccountDomain(&accountM), nil
}

// DeleteByUserID removes every external account link of a user.
func (repo *externalAccountRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ExternalAccountModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete external accounts by user")
	}

	return nil
}

// --- Mapper Functions ---

// toExternalAccountDomain converts a GORM ExternalAccountModel to a domain entity.
func toExternalAccountDomain(data *model.ExternalAccountModel) *entity.ExternalAccount {
	if data == nil {
		return nil
	}

	return &entity.ExternalAccount{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}

// fromExternalAccountDomain converts a domain entity to a GORM ExternalAccountModel.
func fromExternalAccountDomain(data *entity.ExternalAccount) *model.ExternalAccountModel {
	if data == nil {
		return nil
	}

	return &model.ExternalAccountModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		CreatedAt:      data.CreatedAt,
	}
}

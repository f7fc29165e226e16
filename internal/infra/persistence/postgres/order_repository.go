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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order together with its item snapshots.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("payment session already recorded")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid order reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i := range orderM.Items {
		order.Items[i].ID = orderM.Items[i].ID
		order.Items[i].OrderID = orderM.Items[i].OrderID
	}

	return nil
}

// FindByID retrieves a single order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindByPaymentSessionID retrieves the order recorded for a payment session.
func (repo *orderRepository) FindByPaymentSessionID(ctx context.Context, sessionID string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("payment_session_id = ?", sessionID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by payment session")
	}

	return toOrderDomain(&orderM), nil
}

// FindPaidByUserID retrieves all paid orders of a user, newest first.
func (repo *orderRepository) FindPaidByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ? AND is_paid = ?", userID, true).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find paid orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindItemWithOrder retrieves one order item together with its parent order.
func (repo *orderRepository) FindItemWithOrder(ctx context.Context, itemID uuid.UUID) (*entity.OrderItem, *entity.Order, error) {
	var itemM model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, repository.ErrOrderItemNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find order item by ID")
	}

	order, err := repo.FindByID(ctx, itemM.OrderID)
	if err != nil {
		return nil, nil, err
	}

	return toOrderItemDomain(&itemM), order, nil
}

// FindPurchasedProductIDs returns the distinct product IDs across all paid
// orders of a user.
func (repo *orderRepository) FindPurchasedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var productIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Distinct("order_items.product_id").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.is_paid = ?", userID, true).
		Pluck("order_items.product_id", &productIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchased product ids")
	}

	return productIDs, nil
}

// ClaimGuestOrdersByEmail assigns ownerless orders placed with the email
// address to the given user.
func (repo *orderRepository) ClaimGuestOrdersByEmail(ctx context.Context, email string, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_email = ? AND user_id IS NULL", email).
		Update("user_id", userID)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to claim guest orders")
	}

	return result.RowsAffected, nil
}

// AnonymizeByUserID blanks the order email on every order of the user.
func (repo *orderRepository) AnonymizeByUserID(ctx context.Context, userID uuid.UUID, placeholderEmail string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Update("order_email", placeholderEmail).Error; err != nil {
		return errors.Wrap(err, "failed to anonymize orders")
	}

	return nil
}

// FindIDsByUserID returns the IDs of every order belonging to the user.
func (repo *orderRepository) FindIDsByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var orderIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("user_id = ?", userID).
		Pluck("id", &orderIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order ids by user")
	}

	return orderIDs, nil
}

// DeleteByUserID removes a user's orders and their items. Only the demo
// account reset may call this.
func (repo *orderRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	orderIDs, err := repo.FindIDsByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if len(orderIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items by user")
	}

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", orderIDs).
		Delete(&model.OrderModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete orders by user")
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:               data.ID,
		OrderNumber:      data.OrderNumber,
		UserID:           data.UserID,
		OrderEmail:       data.OrderEmail,
		IsPaid:           data.IsPaid,
		PaidAt:           data.PaidAt,
		TotalAmount:      data.TotalAmount,
		PaymentSessionID: data.PaymentSessionID,
		PaymentID:        data.PaymentID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	for i := range data.Items {
		order.Items = append(order.Items, *toOrderItemDomain(&data.Items[i]))
	}

	return order
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductID:   data.ProductID,
		ProductName: data.ProductName,
		Price:       data.Price,
		Quantity:    data.Quantity,
		CreatedAt:   data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:               data.ID,
		OrderNumber:      data.OrderNumber,
		UserID:           data.UserID,
		OrderEmail:       data.OrderEmail,
		IsPaid:           data.IsPaid,
		PaidAt:           data.PaidAt,
		TotalAmount:      data.TotalAmount,
		PaymentSessionID: data.PaymentSessionID,
		PaymentID:        data.PaymentID,
	}

	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return orderM
}

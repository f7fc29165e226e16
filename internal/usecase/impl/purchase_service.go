package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	txManager        repository.TransactionManager
	credentialTokens service.TokenService
	mailer           service.Mailer
	publisher        service.EventPublisher
	baseURL          string
	logger           *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	CredentialTokens service.TokenService
	Mailer           service.Mailer
	Publisher        service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	baseURL := ""
	if params.Config != nil {
		baseURL = params.Config.App.BaseURL
	}

	return &purchaseService{
		txManager:        params.TxManager,
		credentialTokens: params.CredentialTokens,
		mailer:           params.Mailer,
		publisher:        params.Publisher,
		baseURL:          baseURL,
		logger:           params.Logger,
	}
}

func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// newOrderNumber builds a human-facing order reference from the timestamp
// plus a small random suffix.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD%06d%03d", now.Unix()%1_000_000, rand.IntN(1000))
}

// OnPaymentConfirmed records a confirmed payment as an order with item
// snapshots and a DOWNLOAD token, all in one transaction. Replayed webhooks
// for an already-recorded session return the existing order untouched. The
// confirmation mail goes out after commit; a mail failure never unwinds a
// paid order.
func (srv *purchaseService) OnPaymentConfirmed(ctx context.Context, input *usecase.PaymentConfirmedInput) (*usecase.PaymentConfirmedOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment payload is required")
	}

	srv.log(ctx).Info("Processing confirmed payment", slog.String("paymentSessionID", input.PaymentSessionID))

	if input.PaymentSessionID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment session id is required")
	}
	if len(input.Items) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment has no items")
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}

	var (
		recordedOrder  *entity.Order
		downloadSecret string
		alreadyHandled bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		existing, err := orderRepo.FindByPaymentSessionID(ctx, input.PaymentSessionID)
		if err != nil && !errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(err, "failed to check payment session")
		}
		if err == nil {
			srv.log(ctx).Info("Payment session already recorded",
				slog.String("paymentSessionID", input.PaymentSessionID),
				slog.Any("orderID", existing.ID))
			recordedOrder = existing
			alreadyHandled = true

			return nil
		}

		order, err := srv.buildOrder(ctx, repoFactory, input)
		if err != nil {
			return err
		}

		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		token, err := srv.credentialTokens.Issue(ctx, repoFactory.TokenRepo(), entity.TokenTypeDownload, service.IssueTokenInput{
			Email:   input.Email,
			UserID:  input.UserID,
			OrderID: &order.ID,
		})
		if err != nil {
			return errors.Wrap(err, "failed to issue download token")
		}

		recordedOrder = order
		downloadSecret = token.Secret

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute payment confirmation transaction",
			slog.String("paymentSessionID", input.PaymentSessionID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment confirmation transaction")
	}

	if !alreadyHandled {
		srv.sendConfirmation(ctx, input.Email, recordedOrder, downloadSecret)
		srv.publishOrderCompleted(ctx, recordedOrder)
	}

	return &usecase.PaymentConfirmedOutput{Order: recordedOrder, AlreadyHandled: alreadyHandled}, nil
}

// buildOrder snapshots the purchased products into a new paid order.
func (srv *purchaseService) buildOrder(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.PaymentConfirmedInput) (*entity.Order, error) {
	productIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := repoFactory.ProductRepo().FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchased products")
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	now := time.Now()
	order := &entity.Order{
		OrderNumber:      newOrderNumber(now),
		UserID:           input.UserID,
		OrderEmail:       input.Email,
		IsPaid:           true,
		PaidAt:           &now,
		PaymentSessionID: input.PaymentSessionID,
		PaymentID:        input.PaymentID,
	}

	for _, item := range input.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "purchased product not in catalog")
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}

		order.Items = append(order.Items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    quantity,
		})
		order.TotalAmount += product.Price * int64(quantity)
	}

	return order, nil
}

// sendConfirmation mails the receipt with the tokenized download link.
// Failures are logged loudly and swallowed; the order is already committed.
func (srv *purchaseService) sendConfirmation(ctx context.Context, email string, order *entity.Order, downloadSecret string) {
	items := make([]service.OrderConfirmationItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, service.OrderConfirmationItem{
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	confirmation := &service.OrderConfirmation{
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		Items:       items,
		DownloadURL: fmt.Sprintf("%s/download?token=%s", srv.baseURL, downloadSecret),
	}

	if err := srv.mailer.SendOrderConfirmation(ctx, email, confirmation); err != nil {
		srv.log(ctx).Error("Failed to send order confirmation mail",
			slog.Any("orderID", order.ID),
			slog.String("orderNumber", order.OrderNumber),
			slog.Any("error", err))
	}
}

// publishOrderCompleted announces the order downstream, best effort.
func (srv *purchaseService) publishOrderCompleted(ctx context.Context, order *entity.Order) {
	productIDs := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID.String())
	}

	event := &service.OrderCompletedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		OrderEmail:  order.OrderEmail,
		TotalAmount: order.TotalAmount,
		ProductIDs:  productIDs,
	}

	if err := srv.publisher.PublishOrderCompleted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order completed event",
			slog.Any("orderID", order.ID),
			slog.Any("error", err))
	}
}

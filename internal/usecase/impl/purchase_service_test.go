package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// purchaseServiceFixtures holds all test dependencies for purchase service tests.
type purchaseServiceFixtures struct {
	service          usecase.PurchaseUsecase
	txManager        *mockRepo.MockTransactionManager
	credentialTokens *mockSvc.MockTokenService
	mailer           *mockSvc.MockMailer
	publisher        *mockSvc.MockEventPublisher
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	credentialTokens := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewPurchaseService(PurchaseServiceParams{
		TxManager:        txManager,
		CredentialTokens: credentialTokens,
		Mailer:           mailer,
		Publisher:        publisher,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return purchaseServiceFixtures{
		service:          service,
		txManager:        txManager,
		credentialTokens: credentialTokens,
		mailer:           mailer,
		publisher:        publisher,
	}
}

func TestPurchaseService_OnPaymentConfirmed_RecordsOrder(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	productA := &entity.Product{ID: uuid.New(), Name: "Dragon Model", Price: 2900}
	productB := &entity.Product{ID: uuid.New(), Name: "Castle Model", Price: 4500}
	input := &usecase.PaymentConfirmedInput{
		PaymentSessionID: "cs_test_123",
		PaymentID:        "pi_test_456",
		Email:            "buyer@example.com",
		Items: []usecase.PurchasedItem{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockOrderRepo.EXPECT().
				FindByPaymentSessionID(ctx, input.PaymentSessionID).
				Return(nil, repository.ErrOrderNotFound)

			mockProductRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{productA.ID, productB.ID}).
				Return([]*entity.Product{productA, productB}, nil)

			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()

					assert.True(t, order.IsPaid)
					assert.NotNil(t, order.PaidAt)
					assert.Equal(t, input.Email, order.OrderEmail)
					assert.Equal(t, input.PaymentSessionID, order.PaymentSessionID)
					assert.Equal(t, input.PaymentID, order.PaymentID)
					assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD"))

					require.Len(t, order.Items, 2)
					assert.Equal(t, productA.Name, order.Items[0].ProductName)
					assert.Equal(t, productA.Price, order.Items[0].Price)
					assert.Equal(t, 2, order.Items[0].Quantity)
					// 2 * 2900 + 1 * 4500
					assert.Equal(t, int64(10300), order.TotalAmount)
				}).
				Return(nil)

			fx.credentialTokens.EXPECT().
				Issue(ctx, mockTokenRepo, entity.TokenTypeDownload, mock.AnythingOfType("service.IssueTokenInput")).
				Run(func(ctx context.Context, tokens repository.TokenRepository, tokenType entity.TokenType, issueInput service.IssueTokenInput) {
					assert.Equal(t, input.Email, issueInput.Email)
					assert.NotNil(t, issueInput.OrderID)
				}).
				Return(&entity.Token{Secret: "download-secret", Type: entity.TokenTypeDownload}, nil)

			return fn(mockFactory)
		})

	fx.mailer.EXPECT().
		SendOrderConfirmation(ctx, input.Email, mock.AnythingOfType("*service.OrderConfirmation")).
		Run(func(ctx context.Context, to string, confirmation *service.OrderConfirmation) {
			assert.Equal(t, int64(10300), confirmation.TotalAmount)
			assert.Contains(t, confirmation.DownloadURL, "token=download-secret")
			assert.Len(t, confirmation.Items, 2)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderCompleted(ctx, mock.AnythingOfType("*service.OrderCompletedEvent")).
		Run(func(ctx context.Context, event *service.OrderCompletedEvent) {
			assert.Equal(t, input.Email, event.OrderEmail)
			assert.Len(t, event.ProductIDs, 2)
		}).
		Return(nil)

	output, err := fx.service.OnPaymentConfirmed(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.AlreadyHandled)
	assert.Equal(t, int64(10300), output.Order.TotalAmount)
}

func TestPurchaseService_OnPaymentConfirmed_ReplayedSession(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	paidAt := time.Now().Add(-time.Minute)
	existing := &entity.Order{
		ID:               uuid.New(),
		OrderNumber:      "ORD123456001",
		IsPaid:           true,
		PaidAt:           &paidAt,
		PaymentSessionID: "cs_test_123",
	}
	input := &usecase.PaymentConfirmedInput{
		PaymentSessionID: existing.PaymentSessionID,
		Email:            "buyer@example.com",
		Items:            []usecase.PurchasedItem{{ProductID: uuid.New(), Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockOrderRepo.EXPECT().
				FindByPaymentSessionID(ctx, input.PaymentSessionID).
				Return(existing, nil)

			return fn(mockFactory)
		})

	// No token, mail or event on a replay; the mocks would fail the test on
	// any unexpected call.
	output, err := fx.service.OnPaymentConfirmed(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.AlreadyHandled)
	assert.Equal(t, existing, output.Order)
}

func TestPurchaseService_OnPaymentConfirmed_MailFailureDoesNotFail(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Dragon Model", Price: 2900}
	input := &usecase.PaymentConfirmedInput{
		PaymentSessionID: "cs_test_123",
		Email:            "buyer@example.com",
		Items:            []usecase.PurchasedItem{{ProductID: product.ID, Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockOrderRepo.EXPECT().
				FindByPaymentSessionID(ctx, input.PaymentSessionID).
				Return(nil, repository.ErrOrderNotFound)
			mockProductRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{product.ID}).
				Return([]*entity.Product{product}, nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = uuid.New()
				}).
				Return(nil)
			fx.credentialTokens.EXPECT().
				Issue(ctx, mockTokenRepo, entity.TokenTypeDownload, mock.AnythingOfType("service.IssueTokenInput")).
				Return(&entity.Token{Secret: "download-secret"}, nil)

			return fn(mockFactory)
		})

	// The order is committed; a dead SMTP server must not undo the sale.
	fx.mailer.EXPECT().
		SendOrderConfirmation(ctx, input.Email, mock.AnythingOfType("*service.OrderConfirmation")).
		Return(errors.New("smtp connection refused"))
	fx.publisher.EXPECT().
		PublishOrderCompleted(ctx, mock.AnythingOfType("*service.OrderCompletedEvent")).
		Return(nil)

	output, err := fx.service.OnPaymentConfirmed(ctx, input)

	require.NoError(t, err)
	assert.False(t, output.AlreadyHandled)
}

func TestPurchaseService_OnPaymentConfirmed_NilInputRejected(t *testing.T) {
	fx := createTestPurchaseService(t)

	output, err := fx.service.OnPaymentConfirmed(context.Background(), nil)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPurchaseService_OnPaymentConfirmed_MissingSessionID(t *testing.T) {
	fx := createTestPurchaseService(t)

	output, err := fx.service.OnPaymentConfirmed(context.Background(), &usecase.PaymentConfirmedInput{
		Email: "buyer@example.com",
		Items: []usecase.PurchasedItem{{ProductID: uuid.New(), Quantity: 1}},
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPurchaseService_OnPaymentConfirmed_NoItems(t *testing.T) {
	fx := createTestPurchaseService(t)

	output, err := fx.service.OnPaymentConfirmed(context.Background(), &usecase.PaymentConfirmedInput{
		PaymentSessionID: "cs_test_123",
		Email:            "buyer@example.com",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPurchaseService_OnPaymentConfirmed_UnknownProduct(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	input := &usecase.PaymentConfirmedInput{
		PaymentSessionID: "cs_test_123",
		Email:            "buyer@example.com",
		Items:            []usecase.PurchasedItem{{ProductID: uuid.New(), Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockOrderRepo.EXPECT().
				FindByPaymentSessionID(ctx, input.PaymentSessionID).
				Return(nil, repository.ErrOrderNotFound)
			mockProductRepo.EXPECT().
				FindByIDs(ctx, []uuid.UUID{input.Items[0].ProductID}).
				Return([]*entity.Product{}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.OnPaymentConfirmed(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestNewOrderNumber_Format(t *testing.T) {
	now := time.Unix(1_700_001_234, 0)

	number := newOrderNumber(now)

	assert.Len(t, number, 12)
	assert.True(t, strings.HasPrefix(number, "ORD001234"))
}

package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entitlementServiceFixtures holds all test dependencies for entitlement service tests.
type entitlementServiceFixtures struct {
	service          usecase.EntitlementUsecase
	orderRepo        *mockRepo.MockOrderRepository
	productRepo      *mockRepo.MockProductRepository
	tokenRepo        *mockRepo.MockTokenRepository
	credentialTokens *mockSvc.MockTokenService
	signedURLs       *mockSvc.MockSignedURLService
}

func createTestEntitlementService(t *testing.T) entitlementServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	credentialTokens := mockSvc.NewMockTokenService(t)
	signedURLs := mockSvc.NewMockSignedURLService(t)

	service := NewEntitlementService(EntitlementServiceParams{
		OrderRepo:        orderRepo,
		ProductRepo:      productRepo,
		TokenRepo:        tokenRepo,
		CredentialTokens: credentialTokens,
		SignedURLs:       signedURLs,
		Logger:           newDiscardLogger(),
	})

	return entitlementServiceFixtures{
		service:          service,
		orderRepo:        orderRepo,
		productRepo:      productRepo,
		tokenRepo:        tokenRepo,
		credentialTokens: credentialTokens,
		signedURLs:       signedURLs,
	}
}

// paidOrderWithItem builds a paid order owned by userID holding one item.
func paidOrderWithItem(userID *uuid.UUID) (*entity.Order, *entity.OrderItem) {
	paidAt := time.Now().Add(-time.Hour)
	orderID := uuid.New()
	item := &entity.OrderItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		ProductID:   uuid.New(),
		ProductName: "Dragon Model",
		Price:       2900,
		Quantity:    1,
	}
	order := &entity.Order{
		ID:     orderID,
		UserID: userID,
		IsPaid: true,
		PaidAt: &paidAt,
		Items:  []entity.OrderItem{*item},
	}

	return order, item
}

func TestEntitlementService_AuthorizeDownload_OwnerPath(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	order, item := paidOrderWithItem(&userID)
	product := &entity.Product{
		ID:      item.ProductID,
		Name:    item.ProductName,
		FileKey: "models/dragon.zip",
	}

	fx.orderRepo.EXPECT().FindItemWithOrder(ctx, item.ID).Return(item, order, nil)
	fx.productRepo.EXPECT().FindByID(ctx, item.ProductID).Return(product, nil)
	fx.signedURLs.EXPECT().
		SignedDownloadURL(ctx, product.FileKey).
		Return("https://bucket.example.com/models/dragon.zip?sig=abc", nil)

	grant, err := fx.service.AuthorizeDownload(ctx, &usecase.AuthorizeDownloadInput{
		OrderItemID: item.ID,
		UserID:      &userID,
	})

	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/models/dragon.zip?sig=abc", grant.URL)
	assert.Equal(t, item.ProductName, grant.ProductName)
	assert.Equal(t, product.FileKey, grant.FileKey)
}

func TestEntitlementService_AuthorizeDownload_TokenPath(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	order, item := paidOrderWithItem(nil) // guest order, no owner
	product := &entity.Product{
		ID:      item.ProductID,
		FileKey: "models/dragon.zip",
	}

	fx.orderRepo.EXPECT().FindItemWithOrder(ctx, item.ID).Return(item, order, nil)
	fx.credentialTokens.EXPECT().
		Verify(ctx, fx.tokenRepo, "download-secret", entity.TokenTypeDownload).
		Return(&entity.Token{Type: entity.TokenTypeDownload, OrderID: &order.ID}, nil)
	fx.productRepo.EXPECT().FindByID(ctx, item.ProductID).Return(product, nil)
	fx.signedURLs.EXPECT().
		SignedDownloadURL(ctx, product.FileKey).
		Return("https://bucket.example.com/models/dragon.zip?sig=abc", nil)

	grant, err := fx.service.AuthorizeDownload(ctx, &usecase.AuthorizeDownloadInput{
		OrderItemID:    item.ID,
		DownloadSecret: "download-secret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, grant.URL)
}

func TestEntitlementService_AuthorizeDownload_NoCredentials(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	order, item := paidOrderWithItem(&userID)

	fx.orderRepo.EXPECT().FindItemWithOrder(ctx, item.ID).Return(item, order, nil)

	grant, err := fx.service.AuthorizeDownload(ctx, &usecase.AuthorizeDownloadInput{
		OrderItemID: item.ID,
	})

	assert.Nil(t, grant)
	assert.True(t, errors.Is(err, domainerrors.ErrDownloadNotAllowed))
}

func TestEntitlementService_AuthorizeDownload_WrongOwner(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	strangerID := uuid.New()
	order, item := paidOrderWithItem(&ownerID)

	fx.orderRepo.EXPECT().FindItemWithOrder(ctx, item.ID).Return(item, order, nil)

	grant, err := fx.service.AuthorizeDownload(ctx, &usecase.AuthorizeDownloadInput{
		OrderItemID: item.ID,
		UserID:      &strangerID,
	})

	assert.Nil(t, grant)
	assert.True(t, errors.Is(err, domainerrors.ErrDownloadNotAllowed))
}

func TestEntitlementService_AuthorizeDownload_TokenForOtherOrder(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	order, item := paidOrderWithItem(nil)
	otherOrderID := uuid.New()

	fx.orderRepo.EXPECT().FindItemWithOrder(ctx, item.ID).Return(item, order, nil)
	fx.credentialTokens.EXPECT().
		Verify(ctx, fx.tokenRepo, "download-secret", entity.TokenTypeDownload).
		Return(&entity.Token{Type: entity.TokenTypeDownload, OrderID: &otherOrderID}, nil)

	grant, err := fx.service.AuthorizeDownload(ctx, &usecase.AuthorizeDownloadInput{
		OrderItemID:    item.ID,
		DownloadSecret: "download-secret",
	})

	assert.Nil(t, grant)
	// A token for a different order is as good as no token.
	assert.True(t, errors.Is(err, domainerrors.ErrDownloadNotAllowed))
}

func TestEntitlementService_AuthorizeDownload_UnpaidOrder(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	order, item := paidOrderWithItem(&userID)
	order.IsPaid = false
	order.PaidAt = nil

	fx.orderRepo.EXPECT().FindItemWithOrder(ctx, item.ID).Return(item, order, nil)

	grant, err := fx.service.AuthorizeDownload(ctx, &usecase.AuthorizeDownloadInput{
		OrderItemID: item.ID,
		UserID:      &userID,
	})

	assert.Nil(t, grant)
	assert.True(t, errors.Is(err, domainerrors.ErrDownloadNotAllowed))
}

func TestEntitlementService_AuthorizeDownload_UnknownItem(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	itemID := uuid.New()

	fx.orderRepo.EXPECT().
		FindItemWithOrder(ctx, itemID).
		Return(nil, nil, repository.ErrOrderItemNotFound)

	grant, err := fx.service.AuthorizeDownload(ctx, &usecase.AuthorizeDownloadInput{OrderItemID: itemID})

	assert.Nil(t, grant)
	// Missing items and denied access are indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrDownloadNotAllowed))
}

func TestEntitlementService_ResolveDownloadToken_Success(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, IsPaid: true}

	fx.credentialTokens.EXPECT().
		Verify(ctx, fx.tokenRepo, "download-secret", entity.TokenTypeDownload).
		Return(&entity.Token{Type: entity.TokenTypeDownload, OrderID: &orderID}, nil)
	fx.orderRepo.EXPECT().FindByID(ctx, orderID).Return(order, nil)

	resolved, err := fx.service.ResolveDownloadToken(ctx, "download-secret")

	require.NoError(t, err)
	assert.Equal(t, order, resolved)
}

func TestEntitlementService_ResolveDownloadToken_Invalid(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	fx.credentialTokens.EXPECT().
		Verify(ctx, fx.tokenRepo, "bogus", entity.TokenTypeDownload).
		Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unknown token"))

	resolved, err := fx.service.ResolveDownloadToken(ctx, "bogus")

	assert.Nil(t, resolved)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestEntitlementService_ListPurchases(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	orders := []*entity.Order{
		{ID: uuid.New(), IsPaid: true},
		{ID: uuid.New(), IsPaid: true},
	}

	fx.orderRepo.EXPECT().FindPaidByUserID(ctx, userID).Return(orders, nil)

	summaries, err := fx.service.ListPurchases(ctx, userID)

	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, orders[0], summaries[0].Order)
	assert.Equal(t, orders[1], summaries[1].Order)
}

func TestEntitlementService_ListPurchasedProductIDs(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	productIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	fx.orderRepo.EXPECT().FindPurchasedProductIDs(ctx, userID).Return(productIDs, nil)

	ids, err := fx.service.ListPurchasedProductIDs(ctx, userID, nil)

	require.NoError(t, err)
	assert.Equal(t, productIDs, ids)
}

func TestEntitlementService_ListPurchasedProductIDs_CandidateFilter(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	owned := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	notOwned := uuid.New()

	fx.orderRepo.EXPECT().FindPurchasedProductIDs(ctx, userID).Return(owned, nil)

	ids, err := fx.service.ListPurchasedProductIDs(ctx, userID, []uuid.UUID{owned[1], notOwned})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{owned[1]}, ids)
}

package impl

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// demoServiceFixtures holds all test dependencies for demo service tests.
type demoServiceFixtures struct {
	service   usecase.DemoUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
}

func createTestDemoService(t *testing.T, demo *config.DemoConfig) demoServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	cfg := newTestConfig()
	cfg.Demo = demo

	service := NewDemoService(DemoServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return demoServiceFixtures{
		service:   service,
		txManager: txManager,
		hasher:    hasher,
	}
}

func TestDemoService_ResetDemoAccounts_RestoresBothAccounts(t *testing.T) {
	historyID := uuid.New()
	freshID := uuid.New()
	demo := &config.DemoConfig{
		WithHistory: config.DemoAccount{
			ID:       historyID.String(),
			Email:    "demo-history@example.com",
			Password: "demo-password-1",
			Name:     "Demo Collector",
		},
		NewUser: config.DemoAccount{
			ID:       freshID.String(),
			Email:    "demo-fresh@example.com",
			Password: "demo-password-2",
			Name:     "Demo Newcomer",
		},
	}
	fx := createTestDemoService(t, demo)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Dragon Model", Price: 2900}
	staleOrderIDs := []uuid.UUID{uuid.New(), uuid.New()}

	fx.hasher.EXPECT().Hash(demo.WithHistory.Password).Return("hashed-1", nil)
	fx.hasher.EXPECT().Hash(demo.NewUser.Password).Return("hashed-2", nil)

	var seededOrders []*entity.Order

	// First transaction resets the with-history account and reseeds orders.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)

			mockTokenRepo.EXPECT().DeleteByUserID(ctx, historyID).Return(nil)
			mockOrderRepo.EXPECT().FindIDsByUserID(ctx, historyID).Return(staleOrderIDs, nil)
			mockTokenRepo.EXPECT().DeleteByOrderIDs(ctx, staleOrderIDs).Return(nil)
			mockOrderRepo.EXPECT().DeleteByUserID(ctx, historyID).Return(nil)

			dirtyUser := &entity.User{
				ID:        historyID,
				Name:      "Renamed By Visitor",
				Email:     "changed@example.com",
				AvatarURL: "https://example.com/avatar.png",
			}
			mockUserRepo.EXPECT().FindByID(ctx, historyID).Return(dirtyUser, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, demo.WithHistory.Name, user.Name)
					assert.Equal(t, demo.WithHistory.Email, user.Email)
					assert.Equal(t, "hashed-1", user.HashedPassword)
					assert.Empty(t, user.AvatarURL)
					assert.NotNil(t, user.EmailVerified)
					assert.False(t, user.IsDeleted)
					assert.Nil(t, user.DeletedAt)
				}).
				Return(nil)

			mockProductRepo.EXPECT().ListAll(ctx).Return([]*entity.Product{product}, nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					seededOrders = append(seededOrders, order)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	// Second transaction resets the fresh account; no order history.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockTokenRepo.EXPECT().DeleteByUserID(ctx, freshID).Return(nil)
			mockOrderRepo.EXPECT().FindIDsByUserID(ctx, freshID).Return(nil, nil)
			mockOrderRepo.EXPECT().DeleteByUserID(ctx, freshID).Return(nil)

			// The fresh account was deleted by a visitor; it gets recreated.
			mockUserRepo.EXPECT().FindByID(ctx, freshID).Return(nil, repository.ErrUserNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, freshID, user.ID)
					assert.Equal(t, demo.NewUser.Email, user.Email)
					assert.Equal(t, "hashed-2", user.HashedPassword)
					assert.NotNil(t, user.EmailVerified)
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	// Third transaction sweeps expired credential tokens.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().DeleteExpired(ctx).Return(int64(3), nil)

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.ResetDemoAccounts(ctx)

	require.NoError(t, err)
	require.Len(t, seededOrders, 1)
	seeded := seededOrders[0]
	assert.True(t, seeded.IsPaid)
	assert.Equal(t, &historyID, seeded.UserID)
	assert.Equal(t, demo.WithHistory.Email, seeded.OrderEmail)
	assert.Equal(t, product.Price, seeded.TotalAmount)
	require.Len(t, seeded.Items, 1)
	assert.Equal(t, product.Name, seeded.Items[0].ProductName)
}

// Unconfigured accounts are skipped entirely; only the expired token sweep
// runs.
func TestDemoService_ResetDemoAccounts_UnconfiguredAccountsSkipped(t *testing.T) {
	fx := createTestDemoService(t, &config.DemoConfig{})

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().DeleteExpired(ctx).Return(int64(0), nil)

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.ResetDemoAccounts(ctx)

	require.NoError(t, err)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestDemoService_ResetDemoAccounts_SweepFailureSurfaces(t *testing.T) {
	fx := createTestDemoService(t, &config.DemoConfig{})

	ctx := context.Background()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().DeleteExpired(ctx).Return(int64(0), errors.New("connection reset"))

			return fn(mockFactory)
		}).
		Once()

	err := fx.service.ResetDemoAccounts(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute expired token sweep")
}

func TestDemoService_ResetDemoAccounts_InvalidAccountID(t *testing.T) {
	fx := createTestDemoService(t, &config.DemoConfig{
		WithHistory: config.DemoAccount{ID: "not-a-uuid", Password: "pw"},
	})

	err := fx.service.ResetDemoAccounts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid demo account id")
}

func TestDemoService_ResetDemoAccounts_TransactionFailureSurfaces(t *testing.T) {
	accountID := uuid.New()
	fx := createTestDemoService(t, &config.DemoConfig{
		WithHistory: config.DemoAccount{ID: accountID.String(), Password: "pw"},
	})

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	err := fx.service.ResetDemoAccounts(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute demo reset transaction")
}

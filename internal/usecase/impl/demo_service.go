package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// demoSeedOrderCount is how many paid orders the with-history demo account
// starts with after a reset.
const demoSeedOrderCount = 2

// demoService implements the DemoUsecase interface. The public demo accounts
// accumulate visitor-made state; this service wipes it and reseeds.
type demoService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	cfg       config.DemoConfig
	logger    *slog.Logger
}

// DemoServiceParams holds dependencies for DemoService, injected by Fx.
type DemoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDemoService is the constructor for demoService.
func NewDemoService(params DemoServiceParams) usecase.DemoUsecase {
	cfg := config.DemoConfig{}
	if params.Config != nil && params.Config.Demo != nil {
		cfg = *params.Config.Demo
	}

	return &demoService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		cfg:       cfg,
		logger:    params.Logger,
	}
}

func (srv *demoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResetDemoAccounts restores both demo accounts to their seeded state.
func (srv *demoService) ResetDemoAccounts(ctx context.Context) error {
	srv.log(ctx).Info("Resetting demo accounts")

	if err := srv.resetAccount(ctx, srv.cfg.WithHistory, true); err != nil {
		return err
	}
	if err := srv.resetAccount(ctx, srv.cfg.NewUser, false); err != nil {
		return err
	}

	if err := srv.sweepExpiredTokens(ctx); err != nil {
		return err
	}

	srv.log(ctx).Info("Demo accounts reset")

	return nil
}

// sweepExpiredTokens clears out credential tokens past their expiry. The
// reset endpoint fires on a schedule, which makes it a convenient place for
// this housekeeping.
func (srv *demoService) sweepExpiredTokens(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.TokenRepo().DeleteExpired(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired tokens")
		}
		if removed > 0 {
			srv.log(ctx).Info("Removed expired credential tokens", slog.Int64("count", removed))
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute expired token sweep")
	}

	return nil
}

// resetAccount wipes one demo account's state and restores the seeded record.
// The whole reset runs in a single transaction.
func (srv *demoService) resetAccount(ctx context.Context, account config.DemoAccount, withHistory bool) error {
	if account.ID == "" {
		return nil
	}
	userID, err := uuid.Parse(account.ID)
	if err != nil {
		return errors.Wrap(err, "invalid demo account id")
	}

	hashedPassword, err := srv.hasher.Hash(account.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash demo password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		tokenRepo := repoFactory.TokenRepo()

		if err := tokenRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete demo tokens")
		}

		orderIDs, err := orderRepo.FindIDsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list demo orders")
		}
		if len(orderIDs) > 0 {
			if err := tokenRepo.DeleteByOrderIDs(ctx, orderIDs); err != nil {
				return errors.Wrap(err, "failed to delete demo order tokens")
			}
		}

		if err := orderRepo.DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete demo orders")
		}

		if err := srv.restoreUser(ctx, repoFactory.UserRepo(), userID, account, hashedPassword); err != nil {
			return err
		}

		if withHistory {
			if err := srv.seedOrders(ctx, repoFactory, userID, account.Email); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to reset demo account", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute demo reset transaction")
	}

	return nil
}

// restoreUser puts the demo user record back to its seeded values, creating
// it if a visitor managed to delete the account.
func (srv *demoService) restoreUser(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID, account config.DemoAccount, hashedPassword string) error {
	now := time.Now()

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to load demo user")
		}

		user = &entity.User{
			ID:             userID,
			Name:           account.Name,
			Email:          account.Email,
			HashedPassword: hashedPassword,
			EmailVerified:  &now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to recreate demo user")
		}

		return nil
	}

	user.Name = account.Name
	user.Email = account.Email
	user.HashedPassword = hashedPassword
	user.AvatarURL = ""
	user.EmailVerified = &now
	user.IsDeleted = false
	user.DeletedAt = nil

	if err := userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to restore demo user")
	}

	return nil
}

// seedOrders gives the with-history account a couple of paid orders so the
// purchases page has something to show.
func (srv *demoService) seedOrders(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, email string) error {
	products, err := repoFactory.ProductRepo().ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog for demo seed")
	}

	count := demoSeedOrderCount
	if len(products) < count {
		count = len(products)
	}

	for i := 0; i < count; i++ {
		product := products[i]
		now := time.Now()

		order := &entity.Order{
			OrderNumber:      newOrderNumber(now),
			UserID:           &userID,
			OrderEmail:       email,
			IsPaid:           true,
			PaidAt:           &now,
			TotalAmount:      product.Price,
			PaymentSessionID: "demo-seed-" + uuid.New().String(),
			Items: []entity.OrderItem{{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    1,
			}},
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to seed demo order")
		}
	}

	return nil
}

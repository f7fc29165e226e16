package impl

import (
	"context"
	"log/slog"

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

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	orderRepo        repository.OrderRepository
	productRepo      repository.ProductRepository
	tokenRepo        repository.TokenRepository
	credentialTokens service.TokenService
	signedURLs       service.SignedURLService
	logger           *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	OrderRepo        repository.OrderRepository
	ProductRepo      repository.ProductRepository
	TokenRepo        repository.TokenRepository
	CredentialTokens service.TokenService
	SignedURLs       service.SignedURLService
	Logger           *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		orderRepo:        params.OrderRepo,
		productRepo:      params.ProductRepo,
		tokenRepo:        params.TokenRepo,
		credentialTokens: params.CredentialTokens,
		signedURLs:       params.SignedURLs,
		logger:           params.Logger,
	}
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPurchasedProductIDs returns the distinct product IDs across a user's
// paid orders, optionally narrowed to a candidate set.
func (srv *entitlementService) ListPurchasedProductIDs(ctx context.Context, userID uuid.UUID, candidates []uuid.UUID) ([]uuid.UUID, error) {
	ids, err := srv.orderRepo.FindPurchasedProductIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchased product ids")
	}

	if len(candidates) == 0 {
		return ids, nil
	}

	wanted := make(map[uuid.UUID]struct{}, len(candidates))
	for _, id := range candidates {
		wanted[id] = struct{}{}
	}

	owned := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := wanted[id]; ok {
			owned = append(owned, id)
		}
	}

	return owned, nil
}

// ListPurchases returns a user's paid orders, newest first.
func (srv *entitlementService) ListPurchases(ctx context.Context, userID uuid.UUID) ([]*usecase.PurchaseSummary, error) {
	orders, err := srv.orderRepo.FindPaidByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list purchases")
	}

	summaries := make([]*usecase.PurchaseSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, &usecase.PurchaseSummary{Order: order})
	}

	return summaries, nil
}

// AuthorizeDownload decides download access for one order item. Two paths
// grant: the authenticated caller owns the item's order, or a live DOWNLOAD
// token scoped to that order is presented. Everything else fails with the
// same error regardless of which check missed.
func (srv *entitlementService) AuthorizeDownload(ctx context.Context, input *usecase.AuthorizeDownloadInput) (*usecase.DownloadGrant, error) {
	item, order, err := srv.orderRepo.FindItemWithOrder(ctx, input.OrderItemID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDownloadNotAllowed, "order item not found")
		}

		return nil, errors.Wrap(err, "failed to load order item")
	}

	if !order.IsPaid {
		return nil, errors.Wrap(domainerrors.ErrDownloadNotAllowed, "order not paid")
	}

	if !srv.callerMayDownload(ctx, order, input) {
		srv.log(ctx).Warn("Download denied", slog.Any("orderItemID", input.OrderItemID))

		return nil, errors.Wrap(domainerrors.ErrDownloadNotAllowed, "no valid ownership or token")
	}

	product, err := srv.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product for download")
	}

	url, err := srv.signedURLs.SignedDownloadURL(ctx, product.FileKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign download url")
	}

	return &usecase.DownloadGrant{
		URL:         url,
		ProductName: item.ProductName,
		FileKey:     product.FileKey,
	}, nil
}

// callerMayDownload checks the ownership path first, then the token path.
// Tokens are only verified, never consumed; a download link stays reusable
// until it expires.
func (srv *entitlementService) callerMayDownload(ctx context.Context, order *entity.Order, input *usecase.AuthorizeDownloadInput) bool {
	if input.UserID != nil && order.UserID != nil && *order.UserID == *input.UserID {
		return true
	}

	if input.DownloadSecret == "" {
		return false
	}

	token, err := srv.credentialTokens.Verify(ctx, srv.tokenRepo, input.DownloadSecret, entity.TokenTypeDownload)
	if err != nil {
		return false
	}

	return token.OrderID != nil && *token.OrderID == order.ID
}

// ResolveDownloadToken verifies a DOWNLOAD secret and returns the order it
// grants access to.
func (srv *entitlementService) ResolveDownloadToken(ctx context.Context, secret string) (*entity.Order, error) {
	token, err := srv.credentialTokens.Verify(ctx, srv.tokenRepo, secret, entity.TokenTypeDownload)
	if err != nil {
		return nil, err
	}

	if token.OrderID == nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token has no order scope")
	}

	order, err := srv.orderRepo.FindByID(ctx, *token.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token order no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load order for download token")
	}

	return order, nil
}

package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for purchase history and download
// authorization handlers.
type PurchaseHandler struct {
	entitlements usecase.EntitlementUsecase
	logger       *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(entitlements usecase.EntitlementUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		entitlements: entitlements,
		logger:       logger,
	}
}

// orderResponse is the public view of an order.
type orderResponse struct {
	ID          uuid.UUID           `json:"id"`
	OrderNumber string              `json:"order_number"`
	IsPaid      bool                `json:"is_paid"`
	PaidAt      *time.Time          `json:"paid_at,omitempty"`
	TotalAmount int64               `json:"total_amount"`
	Items       []orderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

type orderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       int64     `json:"price"`
	Quantity    int       `json:"quantity"`
}

func toOrderResponse(order *entity.Order) *orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &orderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		IsPaid:      order.IsPaid,
		PaidAt:      order.PaidAt,
		TotalAmount: order.TotalAmount,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}
}

// ListPurchases returns the authenticated user's paid orders, newest first.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	purchases, err := h.entitlements.ListPurchases(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	orders := make([]*orderResponse, 0, len(purchases))
	for _, purchase := range purchases {
		orders = append(orders, toOrderResponse(purchase.Order))
	}

	return response.Success(c, http.StatusOK, orders, "Purchases retrieved successfully")
}

// ListPurchasedProducts returns the distinct product IDs the user owns. The
// storefront uses it to swap "Buy" buttons for "Download" ones; an optional
// comma-separated ?ids= filter narrows the check to the products on the page.
func (h *PurchaseHandler) ListPurchasedProducts(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var candidates []uuid.UUID
	if raw := c.QueryParam("ids"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID in ids filter")
			}
			candidates = append(candidates, id)
		}
	}

	productIDs, err := h.entitlements.ListPurchasedProductIDs(c.Request().Context(), userID, candidates)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"product_ids": productIDs}, "")
}

// AuthorizeDownload grants a signed URL for one order item. The caller may be
// the logged-in owner of the order or a guest presenting the download token
// from the confirmation mail (?token=...). Runs behind optional auth.
func (h *PurchaseHandler) AuthorizeDownload(c echo.Context) error {
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order item ID")
	}

	input := &usecase.AuthorizeDownloadInput{
		OrderItemID:    itemID,
		DownloadSecret: c.QueryParam("token"),
	}
	if userID, ok := c.Get("userID").(uuid.UUID); ok {
		input.UserID = &userID
	}

	grant, err := h.entitlements.AuthorizeDownload(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"url":          grant.URL,
		"product_name": grant.ProductName,
	}, "Download authorized")
}

// ResolveDownloadToken returns the order a download token grants access to.
// The guest download page calls it to render the order before any file is
// fetched.
func (h *PurchaseHandler) ResolveDownloadToken(c echo.Context) error {
	secret := c.QueryParam("token")
	if secret == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Token query parameter is required")
	}

	order, err := h.entitlements.ResolveDownloadToken(c.Request().Context(), secret)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

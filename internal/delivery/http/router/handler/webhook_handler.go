package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderWebhookSecret carries the shared secret agreed with the payment
// provider's forwarder.
const HeaderWebhookSecret = "X-Webhook-Secret"

// WebhookHandler receives payment provider callbacks.
type WebhookHandler struct {
	purchases usecase.PurchaseUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler, injected by Fx.
func NewWebhookHandler(purchases usecase.PurchaseUsecase, cfg *config.Config, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		purchases: purchases,
		cfg:       cfg,
		logger:    logger,
	}
}

// PaymentConfirmed handles the provider's "checkout completed" callback.
// Replays of an already-processed payment session return 200 so the provider
// stops retrying.
func (h *WebhookHandler) PaymentConfirmed(c echo.Context) error {
	if err := h.checkSecret(c); err != nil {
		return errors.WithStack(err)
	}

	var input usecase.PaymentConfirmedInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment payload")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.purchases.OnPaymentConfirmed(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	if output.AlreadyHandled {
		return response.Success(c, http.StatusOK, map[string]string{
			"order_number": output.Order.OrderNumber,
			"status":       "already_processed",
		}, "Payment session already processed")
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"order_number": output.Order.OrderNumber,
		"status":       "recorded",
	}, "Payment recorded successfully")
}

// checkSecret rejects callers that do not present the shared secret.
func (h *WebhookHandler) checkSecret(c echo.Context) error {
	if h.cfg.Webhook == nil || h.cfg.Webhook.Secret == "" {
		h.logger.Error("Webhook secret is not configured, rejecting request")

		return domainerrors.ErrWebhookSignatureInvalid
	}

	presented := c.Request().Header.Get(HeaderWebhookSecret)
	if subtle.ConstantTimeCompare([]byte(presented), []byte(h.cfg.Webhook.Secret)) != 1 {
		return domainerrors.ErrWebhookSignatureInvalid
	}

	return nil
}

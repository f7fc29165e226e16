package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DemoHandler exposes demo account maintenance.
type DemoHandler struct {
	uc     usecase.DemoUsecase
	logger *slog.Logger
}

// NewDemoHandler is the constructor for DemoHandler, injected by Fx.
func NewDemoHandler(uc usecase.DemoUsecase, logger *slog.Logger) *DemoHandler {
	return &DemoHandler{
		uc:     uc,
		logger: logger,
	}
}

// Reset restores the demo accounts to their seeded state.
func (h *DemoHandler) Reset(c echo.Context) error {
	if err := h.uc.ResetDemoAccounts(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Demo accounts reset successfully")
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	PurchaseHandler     *handler.PurchaseHandler
	WebhookHandler      *handler.WebhookHandler
	DemoHandler         *handler.DemoHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	purchaseHandler     *handler.PurchaseHandler
	webhookHandler      *handler.WebhookHandler
	demoHandler         *handler.DemoHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		purchaseHandler:     params.PurchaseHandler,
		webhookHandler:      params.WebhookHandler,
		demoHandler:         params.DemoHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/google", r.accountHandler.GoogleSignIn)
		authGroup.POST("/verify-email", r.accountHandler.VerifyEmail)
		authGroup.POST("/password-reset/request", r.accountHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.accountHandler.ConfirmPasswordReset)
		authGroup.GET("/email-exists", r.accountHandler.EmailExists)
	}

	// Account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/profile", r.accountHandler.GetProfile)
		accountGroup.PATCH("/profile", r.accountHandler.UpdateProfile)
		accountGroup.DELETE("", r.accountHandler.DeleteAccount)
	}

	// Purchase history routes that require authentication
	purchaseGroup := e.Group("/purchases")
	purchaseGroup.Use(r.authMiddleware.Authenticate)
	{
		purchaseGroup.GET("", r.purchaseHandler.ListPurchases)
		purchaseGroup.GET("/products", r.purchaseHandler.ListPurchasedProducts)
	}

	// Download routes. Owners authenticate with a session, guests present the
	// token from the confirmation mail, so auth is optional here.
	downloadGroup := e.Group("/downloads")
	{
		downloadGroup.GET("/resolve", r.purchaseHandler.ResolveDownloadToken)
		downloadGroup.GET("/:itemID", r.purchaseHandler.AuthorizeDownload, r.authMiddleware.AuthenticateOptional)
	}

	// Payment provider callback, guarded by a shared secret header
	e.POST("/webhooks/payment", r.webhookHandler.PaymentConfirmed)

	// Demo account maintenance
	e.POST("/demo/reset", r.demoHandler.Reset)
}

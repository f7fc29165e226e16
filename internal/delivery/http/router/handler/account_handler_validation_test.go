package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	httpvalidator "storefront/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newValidatingContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// An empty-body POST must come back as a 400, not reach the usecase with a
// nil input.
func TestAccountHandler_SignUp_EmptyBodyRejected(t *testing.T) {
	c, rec := newValidatingContext(t, http.MethodPost, "/auth/signup", "")

	h := &AccountHandler{logger: slog.Default()}
	err := h.SignUp(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_SignUp_MissingFieldsRejected(t *testing.T) {
	c, rec := newValidatingContext(t, http.MethodPost, "/auth/signup", `{"email":"not-an-email"}`)

	h := &AccountHandler{logger: slog.Default()}
	err := h.SignUp(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_Login_EmptyBodyRejected(t *testing.T) {
	c, rec := newValidatingContext(t, http.MethodPost, "/auth/login", "")

	h := &AccountHandler{logger: slog.Default()}
	err := h.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_GoogleSignIn_MissingTokenRejected(t *testing.T) {
	c, rec := newValidatingContext(t, http.MethodPost, "/auth/google", `{}`)

	h := &AccountHandler{logger: slog.Default()}
	err := h.GoogleSignIn(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_RequestPasswordReset_InvalidEmailRejected(t *testing.T) {
	c, rec := newValidatingContext(t, http.MethodPost, "/auth/password-reset/request", `{"email":"bogus"}`)

	h := &AccountHandler{logger: slog.Default()}
	err := h.RequestPasswordReset(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestAccountHandler_ConfirmPasswordReset_EmptyBodyRejected(t *testing.T) {
	c, rec := newValidatingContext(t, http.MethodPost, "/auth/password-reset/confirm", "")

	h := &AccountHandler{logger: slog.Default()}
	err := h.ConfirmPasswordReset(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestWebhookHandler_PaymentConfirmed_EmptyBodyRejected(t *testing.T) {
	c, rec := newValidatingContext(t, http.MethodPost, "/webhooks/payment", "")
	c.Request().Header.Set(HeaderWebhookSecret, "hook-secret")

	h := &WebhookHandler{
		cfg: &config.Config{
			Webhook: &config.WebhookConfig{Secret: "hook-secret"},
		},
		logger: slog.Default(),
	}
	err := h.PaymentConfirmed(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

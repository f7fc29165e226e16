// Package mail sends transactional mail over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// gomailMailer implements service.Mailer on top of gomail.
type gomailMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

// NewMailer creates the SMTP-backed mailer from configuration.
func NewMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail configuration must be provided")
	}

	dialer := gomail.NewDialer(
		cfg.Mail.Host,
		cfg.Mail.Port,
		cfg.Mail.Username,
		cfg.Mail.Password,
	)

	return &gomailMailer{
		dialer: dialer,
		from:   cfg.Mail.From,
		logger: logger,
	}, nil
}

func (m *gomailMailer) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// SendVerification sends the address-verification mail with its tokenized link.
func (m *gomailMailer) SendVerification(ctx context.Context, to, verifyURL string) error {
	body := fmt.Sprintf(
		"Welcome!\n\nPlease confirm your email address by opening the link below:\n\n%s\n\nThe link is valid for 24 hours.\n",
		verifyURL,
	)

	return m.send(ctx, to, "Verify your email address", body)
}

// SendPasswordReset sends the password reset mail with its tokenized link.
func (m *gomailMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	body := fmt.Sprintf(
		"A password reset was requested for your account.\n\nOpen the link below to choose a new password:\n\n%s\n\nThe link is valid for 1 hour. If you did not request this, you can ignore this mail.\n",
		resetURL,
	)

	return m.send(ctx, to, "Reset your password", body)
}

// SendOrderConfirmation sends the purchase receipt with the download link.
func (m *gomailMailer) SendOrderConfirmation(ctx context.Context, to string, confirmation *service.OrderConfirmation) error {
	var lines strings.Builder
	fmt.Fprintf(&lines, "Thank you for your purchase!\n\nOrder %s\n\n", confirmation.OrderNumber)
	for _, item := range confirmation.Items {
		fmt.Fprintf(&lines, "  %s x%d  %s\n", item.ProductName, item.Quantity, formatAmount(item.Price*int64(item.Quantity)))
	}
	fmt.Fprintf(&lines, "\nTotal: %s\n\nDownload your files here:\n\n%s\n\nThe download link is valid for 7 days.\n",
		formatAmount(confirmation.TotalAmount), confirmation.DownloadURL)

	return m.send(ctx, to, fmt.Sprintf("Your order %s", confirmation.OrderNumber), lines.String())
}

func (m *gomailMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log(ctx).Warn("SMTP send failed", slog.String("subject", subject), slog.Any("error", err))

		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

// formatAmount renders a smallest-unit amount as a decimal string.
func formatAmount(amount int64) string {
	return fmt.Sprintf("$%d.%02d", amount/100, amount%100)
}

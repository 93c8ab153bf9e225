// Package mail sends transactional email through Mailgun. When no Mailgun
// credentials are configured the package degrades to a no-op sender so local
// development never needs an account.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quill/internal/middleware"

	"github.com/mailgun/mailgun-go/v4"
)

// Sender delivers a single plain-text email.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type mailgunSender struct {
	mg   *mailgun.MailgunImpl
	from string
}

// NewSender builds a Mailgun-backed Sender, or a no-op one when domain or
// apiKey is empty.
func NewSender(domain, apiKey, from string) Sender {
	if domain == "" || apiKey == "" {
		middleware.Logger.Info("Mailgun not configured, email disabled")
		return noopSender{}
	}
	return &mailgunSender{
		mg:   mailgun.NewMailgun(domain, apiKey),
		from: from,
	}
}

func (s *mailgunSender) Send(ctx context.Context, to, subject, body string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	m := s.mg.NewMessage(s.from, subject, body, to)
	_, id, err := s.mg.Send(ctx, m)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	middleware.Logger.Info("Email sent",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("message_id", id),
	)
	return nil
}

type noopSender struct{}

func (noopSender) Send(_ context.Context, to, subject, _ string) error {
	middleware.Logger.Debug("Email suppressed (no sender configured)",
		slog.String("to", to),
		slog.String("subject", subject),
	)
	return nil
}

// WelcomeBody renders the body of the signup welcome email.
func WelcomeBody(username string) string {
	return fmt.Sprintf(
		"Hi %s,\n\nWelcome to Quill! Your account is ready.\n\nHappy writing,\nThe Quill Team\n",
		username,
	)
}

package notification

import (
	"context"
	"fmt"

	"clipperz/config"
)

// Message is a single outbound email.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
}

// Mailer delivers a composed message through an email provider.
// Implementations make exactly one dispatch attempt per call; there is no
// retry or queueing.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// NewMailer builds the Mailer selected by the EMAIL_PROVIDER setting.
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.EmailProvider {
	case "resend":
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("mailer: RESEND_API_KEY is not set")
		}
		return NewResendMailer(cfg.ResendAPIKey), nil
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, fmt.Errorf("mailer: SENDGRID_API_KEY is not set")
		}
		return NewSendGridMailer(cfg.SendGridAPIKey), nil
	case "smtp":
		if cfg.SMTPHost == "" || cfg.SMTPPort == "" {
			return nil, fmt.Errorf("mailer: SMTP_HOST and SMTP_PORT must be set")
		}
		return &SMTPMailer{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		}, nil
	default:
		return nil, fmt.Errorf("mailer: unknown email provider %q", cfg.EmailProvider)
	}
}

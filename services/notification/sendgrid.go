package notification

import (
	"context"
	"fmt"
	netmail "net/mail"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends mail through the SendGrid v3 API.
type SendGridMailer struct {
	client *sendgrid.Client
}

func NewSendGridMailer(apiKey string) *SendGridMailer {
	return &SendGridMailer{client: sendgrid.NewSendClient(apiKey)}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	fromName, fromAddr := splitAddress(msg.From)
	from := mail.NewEmail(fromName, fromAddr)
	to := mail.NewEmail("", msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, "", msg.HTML)
	if msg.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to send email: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status code %d", resp.StatusCode)
	}
	return nil
}

// splitAddress breaks "Name <addr>" into its display name and address parts.
// A bare address comes back with an empty name.
func splitAddress(s string) (name, address string) {
	if parsed, err := netmail.ParseAddress(s); err == nil {
		return parsed.Name, parsed.Address
	}
	return "", s
}

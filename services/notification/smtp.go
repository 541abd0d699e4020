package notification

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
}

func (m *SMTPMailer) Send(_ context.Context, msg Message) error {
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", msg.From, msg.To, msg.Subject)
	if msg.ReplyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo)
	}
	headers += "MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n"
	payload := []byte(headers + "\r\n" + msg.HTML)

	_, fromAddr := splitAddress(msg.From)
	addr := m.Host + ":" + m.Port
	if err := smtp.SendMail(addr, auth, fromAddr, []string{msg.To}, payload); err != nil {
		return fmt.Errorf("smtp: failed to send email: %w", err)
	}
	return nil
}

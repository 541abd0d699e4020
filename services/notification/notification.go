package notification

import (
	"context"
	"fmt"

	"clipperz/models"

	"go.uber.org/zap"
)

// DispatchError marks a failed hand-off to the outbound email transport.
// The underlying transport error is logged, never carried to the caller.
type DispatchError struct {
	Message string
}

func (e *DispatchError) Error() string {
	return e.Message
}

// NotificationService defines methods for sending the salon's emails.
type NotificationService interface {
	SendBookingEmails(ctx context.Context, req models.BookingRequest) error
	SendContactEmail(ctx context.Context, req models.ContactRequest) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Mailer  Mailer
	From    string // sender identity, e.g. "CLIPPERZ <bookings@clipperz.com>"
	OwnerTo string // the salon inbox
	Phone   string
	Address string
	Logger  *zap.Logger
}

// SendBookingEmails sends the owner notification followed by the customer
// confirmation. The sends are sequential and not transactional: if the
// owner email succeeds and the customer email fails, the owner email has
// already gone out and there is no compensating action.
func (s *DefaultNotificationService) SendBookingEmails(ctx context.Context, req models.BookingRequest) error {
	owner := Message{
		From:    s.From,
		To:      s.OwnerTo,
		Subject: fmt.Sprintf("New Booking Request - %s - %s", req.Name, req.PreferredDate),
		HTML:    bookingOwnerBody(req),
	}
	if err := s.Mailer.Send(ctx, owner); err != nil {
		s.Logger.Error("SendBookingEmails: owner email failed", zap.Error(err))
		return &DispatchError{Message: "failed to send booking email"}
	}

	customer := Message{
		From:    s.From,
		To:      req.Email,
		Subject: "Booking Confirmation - CLIPPERZ",
		HTML:    bookingCustomerBody(req, s.Phone, s.OwnerTo, s.Address),
	}
	if err := s.Mailer.Send(ctx, customer); err != nil {
		s.Logger.Error("SendBookingEmails: customer confirmation failed", zap.Error(err))
		return &DispatchError{Message: "failed to send booking email"}
	}

	return nil
}

// SendContactEmail forwards a contact form submission to the salon inbox,
// with Reply-To set to the sender so replies reach them directly.
func (s *DefaultNotificationService) SendContactEmail(ctx context.Context, req models.ContactRequest) error {
	msg := Message{
		From:    s.From,
		To:      s.OwnerTo,
		Subject: fmt.Sprintf("Contact Form: %s", req.Subject),
		HTML:    contactBody(req),
		ReplyTo: req.Email,
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		s.Logger.Error("SendContactEmail: email failed", zap.Error(err))
		return &DispatchError{Message: "failed to send contact email"}
	}

	return nil
}

// Package booking implements the booking form pipeline: validate the
// request, notify the salon and the customer, and produce a calendar
// invite for the requested slot. Nothing is persisted; a booking becomes
// real only when staff confirm it by hand.
package booking

import (
	"context"
	"fmt"

	"clipperz/models"
	"clipperz/services/notification"
	"clipperz/utils"

	"go.uber.org/zap"
)

// BookingService handles booking form submissions.
type BookingService interface {
	// SubmitBooking validates the request, dispatches the notification
	// emails, and returns the calendar invite body for the requested slot.
	SubmitBooking(ctx context.Context, req models.BookingRequest) (string, error)

	// GenerateInvite validates the request and returns the calendar invite
	// body without sending any notifications.
	GenerateInvite(req models.BookingRequest) (string, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Notifier     notification.NotificationService
	SalonAddress string
	Logger       *zap.Logger
}

func (s *DefaultBookingService) SubmitBooking(ctx context.Context, req models.BookingRequest) (string, error) {
	req.Normalize()
	if err := utils.ValidateStruct(&req); err != nil {
		return "", err
	}

	if err := s.Notifier.SendBookingEmails(ctx, req); err != nil {
		return "", err
	}

	invite, err := GenerateICS(req, s.SalonAddress)
	if err != nil {
		return "", fmt.Errorf("generate calendar invite: %w", err)
	}

	s.Logger.Info("booking request submitted",
		zap.String("service", req.Service),
		zap.String("date", req.PreferredDate),
		zap.String("time", req.PreferredTime),
	)
	return invite, nil
}

func (s *DefaultBookingService) GenerateInvite(req models.BookingRequest) (string, error) {
	req.Normalize()
	if err := utils.ValidateStruct(&req); err != nil {
		return "", err
	}
	return GenerateICS(req, s.SalonAddress)
}

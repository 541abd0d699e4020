package handlers

import (
	"errors"
	"net/http"

	"clipperz/models"
	"clipperz/services/booking"
	"clipperz/services/notification"
	"clipperz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking form endpoints.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// SubmitBooking handles POST /api/book.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("SubmitBooking: malformed request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking data")
		return
	}

	invite, err := h.BookingSvc.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Logger, err, "Invalid booking data", "Failed to send booking email")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Booking submitted successfully",
		"icsContent": invite,
	})
}

// DownloadInvite handles POST /api/book/ics. It returns the calendar
// invite as a downloadable attachment for client-driven flows.
func (h *BookingHandler) DownloadInvite(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("DownloadInvite: malformed request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking data")
		return
	}

	invite, err := h.BookingSvc.GenerateInvite(req)
	if err != nil {
		respondError(c, h.Logger, err, "Invalid booking data", "Internal server error")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+booking.InviteFilename(req)+`"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(invite))
}

// respondError maps pipeline failures onto the generic error taxonomy:
// invalid input becomes a 400, a transport failure becomes a 500 with the
// given message, and anything else becomes the generic server error. The
// specific cause is only ever logged.
func respondError(c *gin.Context, logger *zap.Logger, err error, invalidMsg, failureMsg string) {
	var invalid *utils.InvalidInputError
	if errors.As(err, &invalid) {
		logger.Warn("rejected invalid request", zap.String("reason", invalid.Error()))
		utils.JSONError(c, http.StatusBadRequest, invalidMsg)
		return
	}

	var dispatch *notification.DispatchError
	if errors.As(err, &dispatch) {
		logger.Error("email dispatch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, failureMsg)
		return
	}

	logger.Error("request processing failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal server error")
}

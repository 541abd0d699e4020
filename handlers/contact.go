package handlers

import (
	"net/http"

	"clipperz/models"
	"clipperz/services/notification"
	"clipperz/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

func NewContactHandler(notifier notification.NotificationService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{Notifier: notifier, Logger: logger}
}

// SubmitContact handles POST /api/contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("SubmitContact: malformed request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid contact data")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		respondError(c, h.Logger, err, "Invalid contact data", "Failed to send contact email")
		return
	}

	if err := h.Notifier.SendContactEmail(c.Request.Context(), req); err != nil {
		respondError(c, h.Logger, err, "Invalid contact data", "Failed to send contact email")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact form submitted successfully"})
}

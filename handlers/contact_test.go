package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"clipperz/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactPayload() map[string]any {
	return map[string]any{
		"name":    "Jo Smith",
		"email":   "jo@example.com",
		"phone":   "5551234567",
		"subject": "Opening hours",
		"message": "Are you open on Sundays?",
	}
}

func TestSubmitContactEndpoint(t *testing.T) {
	mailer := &mockMailer{}
	r := newTestRouter(mailer)

	w := postJSON(t, r, "/api/contact", contactPayload())
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Contact form submitted successfully"}`, w.Body.String())

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jo@example.com", mailer.sent[0].ReplyTo)
}

func TestSubmitContactEndpointShortMessage(t *testing.T) {
	mailer := &mockMailer{}
	r := newTestRouter(mailer)

	payload := contactPayload()
	payload["message"] = "123456789" // nine characters

	w := postJSON(t, r, "/api/contact", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid contact data"}`, w.Body.String())
	assert.Empty(t, mailer.sent)
}

func TestSubmitContactEndpointDispatchFailure(t *testing.T) {
	mailer := &mockMailer{
		sendFunc: func(context.Context, notification.Message) error {
			return errors.New("timeout")
		},
	}
	r := newTestRouter(mailer)

	w := postJSON(t, r, "/api/contact", contactPayload())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to send contact email"}`, w.Body.String())
}

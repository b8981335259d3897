package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dthstore/dthstore-api/internal/infra/notify"
)

type NotificationHandler struct {
	dispatcher *notify.Dispatcher
}

func NewNotificationHandler(dispatcher *notify.Dispatcher) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher}
}

type TestNotificationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Test fires a sample lead through one channel, so the admin can check
// credentials right after saving them.
func (h *NotificationHandler) Test(w http.ResponseWriter, r *http.Request) {
	channel := chi.URLParam(r, "channel")

	if err := h.dispatcher.Test(r.Context(), channel); err != nil {
		writeJSON(w, http.StatusBadGateway, TestNotificationResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, TestNotificationResponse{
		Success: true,
		Message: fmt.Sprintf("test notification sent via %s", channel),
	})
}

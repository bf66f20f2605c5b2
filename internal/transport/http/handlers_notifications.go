package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"ereporting/internal/notification"
)

// NotificationsHandler exposes the read side of the notification log.
type NotificationsHandler struct {
	svc *notification.Service
}

func NewNotificationsHandler(svc *notification.Service) *NotificationsHandler {
	return &NotificationsHandler{svc: svc}
}

func (h *NotificationsHandler) Register(r chi.Router) {
	r.Get("/", h.handleList)
}

func (h *NotificationsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

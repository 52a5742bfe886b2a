package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"nadi/internal/models"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	feed := h.Notifications.List()
	models.WriteJSON(w, http.StatusOK, map[string]any{
		"notifications": feed,
		"unread":        h.Notifications.Unread(),
	})
}

// MarkNotificationRead идемпотентна: повторный вызов и неизвестный id
// дают тот же 204.
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.Notifications.MarkRead(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

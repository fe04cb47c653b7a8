package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	mw "github.com/threadmind-dev/threadmind/internal/middleware"
)

func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.notification.List(user.Id))
}

func (h *Handler) RemoveNotification(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.notification.Remove(user.Id, mux.Vars(r)["id"])
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	h.notification.ClearAll(user.Id)
	w.WriteHeader(http.StatusOK)
}

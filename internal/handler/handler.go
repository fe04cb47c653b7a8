package handler

import (
	"encoding/json"
	"net/http"

	"github.com/threadmind-dev/threadmind/internal/config"
	"github.com/threadmind-dev/threadmind/internal/logger"
	"github.com/threadmind-dev/threadmind/internal/realtime"
	"github.com/threadmind-dev/threadmind/internal/service"
)

type Handler struct {
	auth         service.AuthService
	thread       service.ThreadService
	comment      service.CommentService
	notification service.NotificationService
	search       service.SearchService
	hub          *realtime.Hub
	cfg          *config.Config
}

func New(
	auth service.AuthService,
	thread service.ThreadService,
	comment service.CommentService,
	notification service.NotificationService,
	search service.SearchService,
	hub *realtime.Hub,
	cfg *config.Config,
) *Handler {
	return &Handler{auth, thread, comment, notification, search, hub, cfg}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

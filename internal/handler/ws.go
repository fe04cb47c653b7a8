package handler

import (
	"net/http"

	mw "github.com/threadmind-dev/threadmind/internal/middleware"
	"github.com/threadmind-dev/threadmind/internal/realtime"
)

// Ws upgrades the connection for the authenticated user. The auth middleware
// accepts the token from the query string, which is how browser WebSocket
// clients pass it.
func (h *Handler) Ws(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	realtime.ServeWs(h.hub, user.Ref(), w, r)
}

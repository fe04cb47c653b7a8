package router

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	mw "github.com/threadmind-dev/threadmind/internal/middleware"
	"github.com/threadmind-dev/threadmind/internal/middleware/metrics"
	rl "github.com/threadmind-dev/threadmind/internal/ratelimiter"
	"github.com/threadmind-dev/threadmind/internal/setup"
)

// New creates and configures the mux router with all the routes.
// IMPORTANT! ratelimiters set with .Use limit requests for all endpoints
// combined in that subrouter.
func New(deps *setup.Dependencies) *mux.Router {
	r := mux.NewRouter()

	r.Use(handlers.CompressHandler)

	r.Use(handlers.CORS(
		handlers.AllowedOrigins(deps.Config.Public.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		handlers.AllowCredentials(),
	))

	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))
	r.Use(metrics.Middleware)

	// Wildcard OPTIONS handler to avoid 404s for preflight requests
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/healthz", h.Health).Methods("GET")

	// WebSocket endpoint; the token travels in the query string
	ws := r.PathPrefix("/ws").Subrouter()
	ws.Use(authMw.NeedAuth())
	ws.HandleFunc("", h.Ws).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()

	// Auth routes, rate limited per IP against credential stuffing
	auth := api.PathPrefix("/auth").Subrouter()
	authLimited := auth.NewRoute().Subrouter()
	authLimited.Use(mw.RateLimit(rl.New(1.0/2, 5, time.Hour), mw.GetIP)) // burst 5, then 1 per 2s
	authLimited.HandleFunc("/register", h.Register).Methods("POST")
	authLimited.HandleFunc("/login", h.Login).Methods("POST")
	auth.HandleFunc("/logout", h.Logout).Methods("POST")

	authProfile := auth.NewRoute().Subrouter()
	authProfile.Use(authMw.NeedAuth())
	authProfile.HandleFunc("/profile", h.Profile).Methods("GET")

	// Public thread reads. Static paths must register before /{id}.
	threads := api.PathPrefix("/threads").Subrouter()
	publicThreads := threads.NewRoute().Subrouter()
	publicThreads.Use(authMw.OptionalAuth())
	publicThreads.HandleFunc("", h.ListThreads).Methods("GET")
	publicThreads.HandleFunc("/trending", h.TrendingThreads).Methods("GET")
	publicThreads.HandleFunc("/user/{id}", h.UserThreads).Methods("GET")
	publicThreads.HandleFunc("/{id}", h.GetThread).Methods("GET")
	publicThreads.HandleFunc("/{id}/insights", h.GenerateInsights).Methods("POST")

	// Thread mutations require auth
	loggedIn := threads.NewRoute().Subrouter()
	loggedIn.Use(authMw.NeedAuth())
	loggedIn.HandleFunc("", h.CreateThread).Methods("POST")
	loggedIn.HandleFunc("/{id}", h.UpdateThread).Methods("PUT")
	loggedIn.HandleFunc("/{id}", h.DeleteThread).Methods("DELETE")
	loggedIn.HandleFunc("/{id}/like", h.ToggleThreadLike).Methods("POST")
	loggedIn.HandleFunc("/{id}/summary", h.GenerateSummary).Methods("POST")
	loggedIn.HandleFunc("/{id}/comments/{commentId}/like", h.ToggleCommentLike).Methods("POST")

	// CreateComment: 1 per second per user
	loggedIn.Handle("/{id}/comments",
		mw.RateLimit(rl.New(1, 1, time.Hour), mw.GetUserIDFromContext)(http.HandlerFunc(h.CreateComment)),
	).Methods("POST")

	// Search
	search := api.PathPrefix("/search").Subrouter()
	search.Use(authMw.OptionalAuth())
	search.HandleFunc("/semantic", h.SemanticSearch).Methods("POST")
	search.HandleFunc("/knowledge-graph", h.KnowledgeGraph).Methods("GET")

	// Notifications
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(authMw.NeedAuth())
	notifications.HandleFunc("", h.ListNotifications).Methods("GET")
	notifications.HandleFunc("/read_all", h.ClearNotifications).Methods("POST")
	notifications.HandleFunc("/{id}", h.RemoveNotification).Methods("DELETE")

	return r
}

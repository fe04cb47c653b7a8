package setup

import (
	"github.com/threadmind-dev/threadmind/internal/ai"
	"github.com/threadmind-dev/threadmind/internal/config"
	"github.com/threadmind-dev/threadmind/internal/handler"
	"github.com/threadmind-dev/threadmind/internal/jwt"
	"github.com/threadmind-dev/threadmind/internal/logger"
	"github.com/threadmind-dev/threadmind/internal/middleware"
	"github.com/threadmind-dev/threadmind/internal/realtime"
	"github.com/threadmind-dev/threadmind/internal/service"
	"github.com/threadmind-dev/threadmind/internal/storage/memory"
	"github.com/threadmind-dev/threadmind/internal/utils"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Config         *config.Config
	Storage        *memory.Storage
	Handler        *handler.Handler
	Hub            *realtime.Hub
	Jwt            jwt.JwtService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies wires the whole application together.
func SetupDependencies(cfg *config.Config) *Dependencies {
	storage := memory.New(cfg.Public.NotificationCap)
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	var aiClient *ai.Client
	if key := cfg.OpenAIKey(); key != "" {
		aiClient = ai.New(key, cfg.Public.AiModel, cfg.Public.AiEmbeddingModel, cfg.Public.AiTimeout)
	} else {
		logger.Log.Warn("no OpenAI key configured, AI features degrade to placeholders")
	}

	notification := service.NewNotification(storage)
	auth := service.NewAuth(storage, jwtService)

	threadValidator := &utils.ThreadValidator{
		TitleMaxLen:   cfg.Public.TitleMaxLen,
		ContentMaxLen: cfg.Public.ContentMaxLen,
		MaxTags:       cfg.Public.MaxTags,
	}
	commentValidator := &utils.CommentValidator{MaxLen: cfg.Public.CommentMaxLen}

	// a typed-nil *ai.Client would defeat the nil checks in the services
	var threadAi service.AiClient
	var embedder service.Embedder
	if aiClient != nil {
		threadAi = aiClient
		embedder = aiClient
	}

	thread := service.NewThread(storage, threadValidator, threadAi, notification, cfg.Public.TrendingLimit, cfg.Public.SummaryMaxTokens)
	comment := service.NewComment(storage, commentValidator, notification)
	search := service.NewSearch(storage, embedder)

	hub := realtime.NewHub(thread)

	h := handler.New(auth, thread, comment, notification, search, hub, cfg)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Hub:            hub,
		Jwt:            jwtService,
		AuthMiddleware: middleware.NewAuth(jwtService),
	}
}

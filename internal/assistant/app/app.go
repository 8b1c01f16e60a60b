package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/assistant/handler"
	"github.com/jeffleon2/ebanking/internal/assistant/llm"
	"github.com/jeffleon2/ebanking/internal/assistant/models"
	"github.com/jeffleon2/ebanking/internal/assistant/repository"
	"github.com/jeffleon2/ebanking/internal/assistant/service"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.ConversationLog{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	if cfg.Assistant.LLMAPIKey == "" {
		logrus.Warn("LLM_API_KEY not set: free-form questions get the fallback reply")
	}
	completer := llm.NewClient(
		cfg.Assistant.LLMURL,
		cfg.Assistant.LLMAPIKey,
		cfg.Assistant.LLMModel,
		&http.Client{Timeout: cfg.Assistant.Timeout},
	)
	assistant := service.NewAssistantService(
		repository.New(db),
		completer,
		client.NewAccountClient(cfg.Services.AccountURL, cfg.Services.Timeout),
	)

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(handler.NewAssistantHandler(assistant), auth)
}

func (a *App) Run(ctx context.Context) error {
	return server.Run(ctx, a.config, a.Router)
}

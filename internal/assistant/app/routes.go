package app

import (
	"github.com/jeffleon2/ebanking/internal/assistant/handler"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

func (a *App) RegisterRoutes(h *handler.AssistantHandler, auth *middleware.Authenticator) {
	assistant := a.Router.Group("/api/assistant", auth.Middleware())
	assistant.POST("/chat", h.Chat)
	assistant.GET("/history", h.History)
}

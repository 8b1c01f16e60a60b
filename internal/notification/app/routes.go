package app

import (
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/notification/handler"
)

func (a *App) RegisterRoutes(h *handler.NotificationHandler, auth *middleware.Authenticator) {
	notifications := a.Router.Group("/api/notifications", auth.Middleware())
	notifications.POST("/send", h.Send)
	notifications.GET("", h.List)
}

package app

import (
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/recurring/handler"
)

func (a *App) RegisterRoutes(h *handler.RecurringHandler, auth *middleware.Authenticator) {
	recurring := a.Router.Group("/api/recurring", auth.Middleware())
	recurring.POST("", h.Create)
	recurring.GET("", h.List)
	recurring.PUT("/:id/cancel", h.Cancel)
	recurring.PUT("/:id/resume", h.Resume)
	recurring.POST("/run", middleware.RequireRole(identity.RoleAdmin), h.Run)
}

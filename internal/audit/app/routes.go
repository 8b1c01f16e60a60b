package app

import (
	"github.com/jeffleon2/ebanking/internal/audit/handler"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

func (a *App) RegisterRoutes(h *handler.AuditHandler, auth *middleware.Authenticator) {
	audit := a.Router.Group("/api/audit", auth.Middleware())
	audit.POST("/events", h.Record)
	audit.POST("/events/external", h.RecordExternal)
	audit.GET("/users/:userId/history", h.UserHistory)
	audit.GET("/stats/user/:userId", h.UserStats)

	admin := audit.Group("", middleware.RequireRole(identity.RoleAdmin))
	admin.GET("/history", h.History)
	admin.GET("/errors", h.Errors)
	admin.GET("/stats/errors", h.ErrorStats)
}

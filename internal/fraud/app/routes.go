package app

import (
	"github.com/jeffleon2/ebanking/internal/fraud/handler"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

func (a *App) RegisterRoutes(h *handler.FraudHandler, auth *middleware.Authenticator) {
	fraud := a.Router.Group("/api/fraud", auth.Middleware(), middleware.RequireRole(identity.RoleAdmin))
	fraud.GET("/checks/:paymentId", h.GetCheck)
	fraud.GET("/blacklist", h.ListBlacklist)
	fraud.POST("/blacklist", h.AddBlacklist)
	fraud.DELETE("/blacklist/:iban", h.RemoveBlacklist)
	fraud.PUT("/limits/:accountRef", h.SetLimit)
}

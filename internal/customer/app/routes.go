package app

import (
	"github.com/jeffleon2/ebanking/internal/customer/handler"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

func (a *App) RegisterRoutes(h *handler.CustomerHandler, auth *middleware.Authenticator) {
	api := a.Router.Group("/api", auth.Middleware())
	api.GET("/user/:id", h.Get)

	customers := api.Group("/customers")
	customers.GET("/me", h.Me)
	customers.PUT("/me", h.UpdateMe)
	customers.POST("", h.Create)

	admin := customers.Group("", middleware.RequireRole(identity.RoleAdmin))
	admin.GET("", h.List)
	admin.PUT("/:id/kyc", h.UpdateKYC)
	admin.DELETE("/:id", h.Delete)
}

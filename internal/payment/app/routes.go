package app

import (
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/payment/handler"
)

func (a *App) RegisterRoutes(h *handler.PaymentHandler, auth *middleware.Authenticator) {
	payments := a.Router.Group("/api/payments", auth.Middleware())
	payments.POST("", h.CreatePayment)
	payments.GET("", h.ListPayments)
	payments.GET("/:id", h.GetPayment)
	payments.POST("/:id/review", middleware.RequireRole(identity.RoleAdmin), h.Review)
}

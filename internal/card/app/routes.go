package app

import (
	"github.com/jeffleon2/ebanking/internal/card/handler"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

func (a *App) RegisterRoutes(h *handler.CardHandler, auth *middleware.Authenticator) {
	cards := a.Router.Group("/api/cards", auth.Middleware())
	cards.POST("", h.Create)
	cards.GET("", h.List)
	cards.POST("/pay", h.Pay)
	cards.GET("/:id", h.Get)
	cards.DELETE("/:id", h.Delete)
	cards.PUT("/:id/block", h.Block)
	cards.PUT("/:id/unblock", h.Unblock)
	cards.POST("/:id/debit", h.Debit)
	cards.GET("/:id/transactions", h.Transactions)
}

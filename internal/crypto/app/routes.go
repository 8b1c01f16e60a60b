package app

import (
	"github.com/jeffleon2/ebanking/internal/crypto/handler"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

func (a *App) RegisterRoutes(h *handler.CryptoHandler, auth *middleware.Authenticator) {
	a.Router.GET("/api/crypto/prices", h.Prices)

	crypto := a.Router.Group("/api/crypto", auth.Middleware())
	crypto.POST("/trade", h.Trade)
	crypto.GET("/wallets", h.Wallets)
	crypto.GET("/transactions", h.Transactions)
}

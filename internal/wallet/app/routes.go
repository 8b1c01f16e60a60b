package app

import (
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/wallet/handler"
)

func (a *App) RegisterRoutes(h *handler.WalletHandler, auth *middleware.Authenticator) {
	wallets := a.Router.Group("/api/wallets", auth.Middleware())
	wallets.POST("", h.CreateWallet)
	wallets.GET("", h.ListWallets)
	wallets.GET("/:ref", h.Summary)
	wallets.POST("/:ref/expenses", h.AddExpense)
}

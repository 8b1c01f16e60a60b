package app

import (
	"github.com/jeffleon2/ebanking/internal/account/handler"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

func (a *App) RegisterRoutes(h *handler.AccountHandler, auth *middleware.Authenticator) {
	api := a.Router.Group("/api", auth.Middleware())

	accounts := api.Group("/accounts")
	accounts.POST("", h.CreateAccount)
	accounts.GET("", h.ListAccounts)
	accounts.GET("/:ref", h.GetAccount)
	accounts.GET("/:ref/balance", h.GetBalance)
	accounts.GET("/:ref/solde", h.GetBalance)
	accounts.POST("/:ref/credit", h.Credit)
	accounts.POST("/:ref/debit", h.Debit)
	accounts.GET("/:ref/statement", h.Statement)
	accounts.GET("/:ref/statement/csv", h.StatementCSV)
	accounts.PUT("/:ref/status", middleware.RequireRole(identity.RoleAdmin), h.SetStatus)

	api.POST("/transfers", h.Transfer)
	api.GET("/users/:userId/primary-account", h.PrimaryAccount)
}

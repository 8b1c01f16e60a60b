package app

import (
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/portfolio/handler"
)

func (a *App) RegisterRoutes(p *handler.PortfolioHandler, g *handler.GatewayHandler, auth *middleware.Authenticator) {
	portfolios := a.Router.Group("/api/portefeuilles", auth.Middleware())
	portfolios.POST("", p.Create)
	portfolios.GET("", p.List)
	portfolios.POST("/transfer", p.Transfer)
	portfolios.GET("/:id", p.Get)
	portfolios.GET("/:id/solde", p.Balance)
	portfolios.GET("/:id/transfers", p.Transfers)
	portfolios.POST("/:id/credit", p.Credit)
	portfolios.POST("/:id/debit", p.Debit)

	cmi := a.Router.Group("/api/cmi", auth.Middleware())
	cmi.GET("/comptes/me", g.MyAccount)
	cmi.POST("/portefeuilles", g.FundNew)
	cmi.POST("/alimentations", g.Fund)

	admin := cmi.Group("", middleware.RequireRole(identity.RoleAdmin))
	admin.POST("/comptes", g.OpenAccount)
	admin.PUT("/:compteId/:utilisateurId/assigner-utilisateur", g.AssignUser)
}

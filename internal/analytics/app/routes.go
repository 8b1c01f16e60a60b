package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/analytics/handler"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handler.AnalyticsHandler, auth *middleware.Authenticator) {
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	analytics := a.Router.Group("/api/analytics", auth.Middleware())
	analytics.GET("/expenses/total", h.TotalExpenses)
	analytics.GET("/budget", h.CheckBudget)
}

package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/analytics/dto"
	"github.com/jeffleon2/ebanking/internal/analytics/models"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/shopspring/decimal"
)

type AnalyticsService interface {
	Consume(ctx context.Context, topic string, value []byte) error
	TotalExpenses(ctx context.Context, caller identity.Principal, category string) (*dto.CategoryTotal, error)
	CheckBudget(ctx context.Context, caller identity.Principal, walletRef string, limit decimal.Decimal) (*models.Alert, error)
}

type AnalyticsHandler struct {
	Service AnalyticsService
}

func NewAnalyticsHandler(s AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

func (h *AnalyticsHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	return h.Service.Consume(ctx, topic, value)
}

// GET /api/analytics/expenses/total?category=
func (h *AnalyticsHandler) TotalExpenses(c *gin.Context) {
	total, err := h.Service.TotalExpenses(c.Request.Context(), caller(c), c.Query("category"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}

// GET /api/analytics/budget?walletRef=&limit=
func (h *AnalyticsHandler) CheckBudget(c *gin.Context) {
	limit, err := decimal.NewFromString(c.Query("limit"))
	if err != nil {
		httperr.BadRequest(c, errors.New("limit must be a decimal amount"))
		return
	}
	alert, err := h.Service.CheckBudget(c.Request.Context(), caller(c), c.Query("walletRef"), limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, alert)
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

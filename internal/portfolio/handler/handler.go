package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/portfolio/dto"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/shopspring/decimal"
)

type PortfolioService interface {
	CreatePortfolio(ctx context.Context, caller identity.Principal, req *dto.CreatePortfolio) (*models.Alert, error)
	ListPortfolios(ctx context.Context, caller identity.Principal) ([]models.Portfolio, error)
	GetPortfolio(ctx context.Context, caller identity.Principal, id string) (*models.Portfolio, error)
	Balance(ctx context.Context, caller identity.Principal, id string) (*dto.Balance, error)
	Credit(ctx context.Context, caller identity.Principal, id string, amount decimal.Decimal) (*models.Portfolio, error)
	Debit(ctx context.Context, caller identity.Principal, id string, amount decimal.Decimal) (*models.Portfolio, error)
	Transfer(ctx context.Context, caller identity.Principal, req *dto.Transfer) (*models.PortfolioTransfer, error)
	Transfers(ctx context.Context, caller identity.Principal, id string) ([]models.PortfolioTransfer, error)
}

type PortfolioHandler struct {
	Service PortfolioService
}

func NewPortfolioHandler(s PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{Service: s}
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	var req dto.CreatePortfolio
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	alert, err := h.Service.CreatePortfolio(c.Request.Context(), caller(c), &req)
	if err == nil && alert.Success {
		respond(c, http.StatusCreated, alert, nil)
		return
	}
	respond(c, http.StatusOK, alert, err)
}

func (h *PortfolioHandler) List(c *gin.Context) {
	ps, err := h.Service.ListPortfolios(c.Request.Context(), caller(c))
	respond(c, http.StatusOK, ps, err)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	p, err := h.Service.GetPortfolio(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, p, err)
}

func (h *PortfolioHandler) Balance(c *gin.Context) {
	b, err := h.Service.Balance(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, b, err)
}

func (h *PortfolioHandler) Credit(c *gin.Context) {
	h.move(c, h.Service.Credit)
}

func (h *PortfolioHandler) Debit(c *gin.Context) {
	h.move(c, h.Service.Debit)
}

func (h *PortfolioHandler) Transfer(c *gin.Context) {
	var req dto.Transfer
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	t, err := h.Service.Transfer(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusCreated, t, err)
}

func (h *PortfolioHandler) Transfers(c *gin.Context) {
	ts, err := h.Service.Transfers(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, ts, err)
}

type moveFunc func(ctx context.Context, caller identity.Principal, id string, amount decimal.Decimal) (*models.Portfolio, error)

func (h *PortfolioHandler) move(c *gin.Context, fn moveFunc) {
	var req dto.Amount
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	if !req.Amount.IsPositive() {
		httperr.Abort(c, models.ErrInvalidAmount)
		return
	}
	p, err := fn(c.Request.Context(), caller(c), c.Param("id"), req.Amount)
	respond(c, http.StatusOK, p, err)
}

func respond(c *gin.Context, status int, body interface{}, err error) {
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, body)
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

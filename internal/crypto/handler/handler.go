package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/crypto/dto"
	"github.com/jeffleon2/ebanking/internal/crypto/models"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

type CryptoService interface {
	ListPrices(ctx context.Context) []dto.Price
	Wallets(ctx context.Context, caller identity.Principal) ([]models.CryptoWallet, error)
	Transactions(ctx context.Context, caller identity.Principal) ([]models.CryptoTransaction, error)
	Trade(ctx context.Context, caller identity.Principal, req *dto.Trade) (*models.CryptoTransaction, error)
}

type CryptoHandler struct {
	Service CryptoService
}

func NewCryptoHandler(s CryptoService) *CryptoHandler {
	return &CryptoHandler{Service: s}
}

// GET /api/crypto/prices
func (h *CryptoHandler) Prices(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.ListPrices(c.Request.Context()))
}

// POST /api/crypto/trade
func (h *CryptoHandler) Trade(c *gin.Context) {
	var req dto.Trade
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	tx, err := h.Service.Trade(c.Request.Context(), caller(c), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// GET /api/crypto/wallets
func (h *CryptoHandler) Wallets(c *gin.Context) {
	wallets, err := h.Service.Wallets(c.Request.Context(), caller(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, wallets)
}

// GET /api/crypto/transactions
func (h *CryptoHandler) Transactions(c *gin.Context) {
	txs, err := h.Service.Transactions(c.Request.Context(), caller(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/wallet/dto"
	"github.com/jeffleon2/ebanking/internal/wallet/models"
)

// WalletServiceIn defines the interface for wallet business logic operations.
type WalletServiceIn interface {
	CreateWallet(ctx context.Context, caller identity.Principal, req *dto.CreateWallet) (*models.Wallet, error)
	ListWallets(ctx context.Context, caller identity.Principal) ([]models.Wallet, error)
	Summary(ctx context.Context, caller identity.Principal, ref string) (*dto.Summary, error)
	AddExpense(ctx context.Context, caller identity.Principal, ref string, req *dto.AddExpense) (*models.Expense, error)
}

// WalletHandler exposes budget wallets over REST.
type WalletHandler struct {
	WalletService WalletServiceIn
}

// Wallet creates a new WalletHandler with the provided wallet service.
func Wallet(s WalletServiceIn) *WalletHandler {
	return &WalletHandler{
		WalletService: s,
	}
}

// POST /api/wallets
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req dto.CreateWallet
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	wallet, err := h.WalletService.CreateWallet(c.Request.Context(), caller(c), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, wallet)
}

// GET /api/wallets
func (h *WalletHandler) ListWallets(c *gin.Context) {
	wallets, err := h.WalletService.ListWallets(c.Request.Context(), caller(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, wallets)
}

// GET /api/wallets/:ref
func (h *WalletHandler) Summary(c *gin.Context) {
	summary, err := h.WalletService.Summary(c.Request.Context(), caller(c), c.Param("ref"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// POST /api/wallets/:ref/expenses
func (h *WalletHandler) AddExpense(c *gin.Context) {
	var req dto.AddExpense
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	expense, err := h.WalletService.AddExpense(c.Request.Context(), caller(c), c.Param("ref"), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/portfolio/dto"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
)

type GatewayService interface {
	OpenAccount(ctx context.Context, caller identity.Principal, req *dto.OpenBankAccount) (*models.BankAccount, error)
	MyAccount(ctx context.Context, caller identity.Principal) (*models.BankAccount, error)
	AssignUser(ctx context.Context, caller identity.Principal, number string, userID string) (bool, error)
	FundNewPortfolio(ctx context.Context, caller identity.Principal, req *dto.FundNew) (*models.Alert, error)
	FundPortfolio(ctx context.Context, caller identity.Principal, req *dto.FundExisting) (*models.Alert, error)
}

type GatewayHandler struct {
	Service GatewayService
}

func NewGatewayHandler(s GatewayService) *GatewayHandler {
	return &GatewayHandler{Service: s}
}

// POST /api/cmi/comptes
func (h *GatewayHandler) OpenAccount(c *gin.Context) {
	var req dto.OpenBankAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	a, err := h.Service.OpenAccount(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusCreated, a, err)
}

// GET /api/cmi/comptes/me
func (h *GatewayHandler) MyAccount(c *gin.Context) {
	a, err := h.Service.MyAccount(c.Request.Context(), caller(c))
	respond(c, http.StatusOK, a, err)
}

// PUT /api/cmi/:compteId/:utilisateurId/assigner-utilisateur
func (h *GatewayHandler) AssignUser(c *gin.Context) {
	ok, err := h.Service.AssignUser(c.Request.Context(), caller(c), c.Param("compteId"), c.Param("utilisateurId"))
	respond(c, http.StatusOK, ok, err)
}

// POST /api/cmi/portefeuilles
func (h *GatewayHandler) FundNew(c *gin.Context) {
	var req dto.FundNew
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	alert, err := h.Service.FundNewPortfolio(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusOK, alert, err)
}

// POST /api/cmi/alimentations
func (h *GatewayHandler) Fund(c *gin.Context) {
	var req dto.FundExisting
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	alert, err := h.Service.FundPortfolio(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusOK, alert, err)
}

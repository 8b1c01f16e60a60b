package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/card/dto"
	"github.com/jeffleon2/ebanking/internal/card/models"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/shopspring/decimal"
)

type CardService interface {
	CreateCard(ctx context.Context, caller identity.Principal, req *dto.CreateCard) (*dto.Issued, error)
	ListCards(ctx context.Context, caller identity.Principal) ([]dto.Card, error)
	GetCard(ctx context.Context, caller identity.Principal, id string) (*dto.Card, error)
	BlockCard(ctx context.Context, caller identity.Principal, id string) (*dto.Card, error)
	UnblockCard(ctx context.Context, caller identity.Principal, id string) (*dto.Card, error)
	DeleteCard(ctx context.Context, caller identity.Principal, id string) error
	Debit(ctx context.Context, caller identity.Principal, id string, amount decimal.Decimal) (*dto.Receipt, error)
	Pay(ctx context.Context, caller identity.Principal, req *dto.Pay) (*dto.Receipt, error)
	Transactions(ctx context.Context, caller identity.Principal, id string) ([]models.CardTransaction, error)
}

type CardHandler struct {
	Service CardService
}

func NewCardHandler(s CardService) *CardHandler {
	return &CardHandler{Service: s}
}

func (h *CardHandler) Create(c *gin.Context) {
	var req dto.CreateCard
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	issued, err := h.Service.CreateCard(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusCreated, issued, err)
}

func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.Service.ListCards(c.Request.Context(), caller(c))
	respond(c, http.StatusOK, cards, err)
}

func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.Service.GetCard(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, card, err)
}

func (h *CardHandler) Block(c *gin.Context) {
	card, err := h.Service.BlockCard(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, card, err)
}

func (h *CardHandler) Unblock(c *gin.Context) {
	card, err := h.Service.UnblockCard(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, card, err)
}

func (h *CardHandler) Delete(c *gin.Context) {
	if err := h.Service.DeleteCard(c.Request.Context(), caller(c), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Debit is called by sibling services, e.g. for recurring payments.
func (h *CardHandler) Debit(c *gin.Context) {
	var req dto.Debit
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	receipt, err := h.Service.Debit(c.Request.Context(), caller(c), c.Param("id"), req.Amount)
	respond(c, http.StatusOK, receipt, err)
}

func (h *CardHandler) Pay(c *gin.Context) {
	var req dto.Pay
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	receipt, err := h.Service.Pay(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusOK, receipt, err)
}

func (h *CardHandler) Transactions(c *gin.Context) {
	txs, err := h.Service.Transactions(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, txs, err)
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

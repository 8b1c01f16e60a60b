package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/recurring/dto"
	"github.com/jeffleon2/ebanking/internal/recurring/models"
)

type RecurringService interface {
	Create(ctx context.Context, caller identity.Principal, req *dto.CreateRecurring) (*models.RecurringPayment, error)
	ListByUser(ctx context.Context, caller identity.Principal) ([]models.RecurringPayment, error)
	Cancel(ctx context.Context, caller identity.Principal, id string) (*models.RecurringPayment, error)
	Resume(ctx context.Context, caller identity.Principal, id string) (*models.RecurringPayment, error)
	RunDue(ctx context.Context) dto.RunReport
}

type RecurringHandler struct {
	Service RecurringService
}

func NewRecurringHandler(s RecurringService) *RecurringHandler {
	return &RecurringHandler{Service: s}
}

func (h *RecurringHandler) Create(c *gin.Context) {
	var req dto.CreateRecurring
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	p, err := h.Service.Create(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusCreated, p, err)
}

func (h *RecurringHandler) List(c *gin.Context) {
	ps, err := h.Service.ListByUser(c.Request.Context(), caller(c))
	respond(c, http.StatusOK, ps, err)
}

func (h *RecurringHandler) Cancel(c *gin.Context) {
	p, err := h.Service.Cancel(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, p, err)
}

func (h *RecurringHandler) Resume(c *gin.Context) {
	p, err := h.Service.Resume(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, p, err)
}

// Run triggers a scheduler pass immediately.
func (h *RecurringHandler) Run(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.RunDue(c.Request.Context()))
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

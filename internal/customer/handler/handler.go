package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/customer/dto"
	"github.com/jeffleon2/ebanking/internal/customer/models"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

type CustomerService interface {
	Create(ctx context.Context, caller identity.Principal, req *dto.CreateCustomer) (*models.Customer, error)
	Get(ctx context.Context, caller identity.Principal, id string) (*models.Customer, error)
	Me(ctx context.Context, caller identity.Principal) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
	UpdateMe(ctx context.Context, caller identity.Principal, req *dto.UpdateProfile) (*models.Customer, error)
	UpdateKYC(ctx context.Context, caller identity.Principal, id string, req *dto.UpdateKYC) (*models.Customer, error)
	Delete(ctx context.Context, caller identity.Principal, id string) error
}

type CustomerHandler struct {
	Service CustomerService
}

func NewCustomerHandler(s CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: s}
}

// GET /api/user/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.Service.Get(c.Request.Context(), caller(c), c.Param("id"))
	respond(c, http.StatusOK, customer, err)
}

// GET /api/customers/me
func (h *CustomerHandler) Me(c *gin.Context) {
	customer, err := h.Service.Me(c.Request.Context(), caller(c))
	respond(c, http.StatusOK, customer, err)
}

// GET /api/customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Service.List(c.Request.Context())
	respond(c, http.StatusOK, customers, err)
}

// POST /api/customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CreateCustomer
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	customer, err := h.Service.Create(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusCreated, customer, err)
}

// PUT /api/customers/me
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	customer, err := h.Service.UpdateMe(c.Request.Context(), caller(c), &req)
	respond(c, http.StatusOK, customer, err)
}

// PUT /api/customers/:id/kyc
func (h *CustomerHandler) UpdateKYC(c *gin.Context) {
	var req dto.UpdateKYC
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	customer, err := h.Service.UpdateKYC(c.Request.Context(), caller(c), c.Param("id"), &req)
	respond(c, http.StatusOK, customer, err)
}

// DELETE /api/customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), caller(c), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
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

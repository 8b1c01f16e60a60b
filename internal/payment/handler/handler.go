package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/payment/dto"
	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/sirupsen/logrus"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, caller identity.Principal, req *dto.CreatePayment) (*models.Payment, error)
	GetPayment(ctx context.Context, caller identity.Principal, id string) (*models.Payment, error)
	ListPayments(ctx context.Context, caller identity.Principal, status string, all bool) ([]models.Payment, error)
	Review(ctx context.Context, caller identity.Principal, id string, req *dto.Review) (*models.Payment, error)
	HandleFraudResult(ctx context.Context, event events.FraudCheckEvent) error
	HandleFundsResult(ctx context.Context, event events.AccountResponseEvent) error
	HandleDebitResult(ctx context.Context, event events.AccountResponseEvent) error
}

type PaymentHandler struct {
	Service PaymentService
}

func NewPaymentHandler(s PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /api/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	payment, err := h.Service.CreatePayment(c.Request.Context(), caller(c), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, payment)
}

// GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.Service.GetPayment(c.Request.Context(), caller(c), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GET /api/payments?status=COMPLETED&all=true
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.Service.ListPayments(c.Request.Context(), caller(c), c.Query("status"), c.Query("all") == "true")
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// POST /api/payments/:id/review
func (h *PaymentHandler) Review(c *gin.Context) {
	var req dto.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	payment, err := h.Service.Review(c.Request.Context(), caller(c), c.Param("id"), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case events.TopicPaymentsChecked:
		var event events.FraudCheckEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing Fraud check event %s", err.Error())
			return fmt.Errorf("error parsing Fraud check event %w", err)
		}
		return h.Service.HandleFraudResult(ctx, event)
	case events.TopicAccountFundsVerified, events.TopicAccountDebitCompleted:
		var event events.AccountResponseEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing Account response event %s", err.Error())
			return fmt.Errorf("error parsing Account response event %w", err)
		}
		if topic == events.TopicAccountFundsVerified {
			return h.Service.HandleFundsResult(ctx, event)
		}
		return h.Service.HandleDebitResult(ctx, event)
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

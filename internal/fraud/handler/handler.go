package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/fraud/dto"
	"github.com/jeffleon2/ebanking/internal/fraud/models"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/sirupsen/logrus"
)

type FraudServiceIn interface {
	EvaluatePayment(ctx context.Context, event events.PaymentCreatedEvent) error
	RecordOutcome(ctx context.Context, event events.PaymentStatusChangedEvent) error
	GetCheck(ctx context.Context, paymentID string) (*models.Check, error)
	ListBlacklist(ctx context.Context) ([]models.BlacklistedIBAN, error)
	AddBlacklist(ctx context.Context, caller identity.Principal, req *dto.Blacklist) (*models.BlacklistedIBAN, error)
	RemoveBlacklist(ctx context.Context, iban string) error
	SetLimit(ctx context.Context, accountRef string, req *dto.Limit) (*models.AccountLimit, error)
}

type FraudHandler struct {
	FraudService FraudServiceIn
}

func Fraud(s FraudServiceIn) *FraudHandler {
	return &FraudHandler{
		FraudService: s,
	}
}

func (h *FraudHandler) Handler(ctx context.Context, topic string, raw []byte) error {
	switch topic {
	case events.TopicPaymentsCreated:
		var event events.PaymentCreatedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling PaymentCreatedEvent: %s", err.Error())
			return err
		}
		if err := h.FraudService.EvaluatePayment(ctx, event); err != nil {
			logrus.Errorf("Error evaluating fraud: %s", err.Error())
			return err
		}
		return nil
	case events.TopicPaymentStatusChanged:
		var event events.PaymentStatusChangedEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			logrus.Errorf("Error unmarshalling PaymentStatusChangedEvent: %s", err.Error())
			return err
		}
		return h.FraudService.RecordOutcome(ctx, event)
	default:
		return fmt.Errorf("topic not allowed %s", topic)
	}
}

// GET /api/fraud/checks/:paymentId
func (h *FraudHandler) GetCheck(c *gin.Context) {
	check, err := h.FraudService.GetCheck(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

// GET /api/fraud/blacklist
func (h *FraudHandler) ListBlacklist(c *gin.Context) {
	list, err := h.FraudService.ListBlacklist(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/fraud/blacklist
func (h *FraudHandler) AddBlacklist(c *gin.Context) {
	var req dto.Blacklist
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	p, _ := middleware.CurrentPrincipal(c)
	entry, err := h.FraudService.AddBlacklist(c.Request.Context(), p, &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// DELETE /api/fraud/blacklist/:iban
func (h *FraudHandler) RemoveBlacklist(c *gin.Context) {
	if err := h.FraudService.RemoveBlacklist(c.Request.Context(), c.Param("iban")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PUT /api/fraud/limits/:accountRef
func (h *FraudHandler) SetLimit(c *gin.Context) {
	var req dto.Limit
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	limit, err := h.FraudService.SetLimit(c.Request.Context(), c.Param("accountRef"), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, limit)
}

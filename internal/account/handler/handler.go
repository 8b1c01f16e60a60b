package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/account/dto"
	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type AccountService interface {
	CreateAccount(ctx context.Context, caller identity.Principal, req *dto.CreateAccount) (*models.Account, error)
	GetAccount(ctx context.Context, caller identity.Principal, ref string) (*models.Account, error)
	ListAccounts(ctx context.Context, caller identity.Principal) ([]models.Account, error)
	GetBalance(ctx context.Context, caller identity.Principal, ref string) (*dto.Balance, error)
	Credit(ctx context.Context, caller identity.Principal, ref string, amount decimal.Decimal) (*models.Account, error)
	Debit(ctx context.Context, caller identity.Principal, ref string, amount decimal.Decimal) (*models.Account, error)
	Transfer(ctx context.Context, caller identity.Principal, req *dto.Transfer) (*dto.TransferResult, error)
	Statement(ctx context.Context, caller identity.Principal, ref string, from time.Time, to time.Time) (*dto.Statement, error)
	StatementCSV(ctx context.Context, caller identity.Principal, ref string, from time.Time, to time.Time) ([]byte, error)
	PrimaryAccount(ctx context.Context, caller identity.Principal, userID string) (*models.Account, error)
	SetStatus(ctx context.Context, caller identity.Principal, ref string, status string) error
	VerifyFunds(ctx context.Context, event events.PaymentCreatedEvent) error
	DebitForPayment(ctx context.Context, event events.AccountMovementRequestedEvent) error
	RefundPayment(ctx context.Context, event events.AccountMovementRequestedEvent) error
}

type AccountHandler struct {
	Service AccountService
}

func NewAccountHandler(s AccountService) *AccountHandler {
	return &AccountHandler{Service: s}
}

// POST /api/accounts
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req dto.CreateAccount
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	account, err := h.Service.CreateAccount(c.Request.Context(), caller(c), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// GET /api/accounts
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.Service.ListAccounts(c.Request.Context(), caller(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// GET /api/accounts/:ref
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.Service.GetAccount(c.Request.Context(), caller(c), c.Param("ref"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// GET /api/accounts/:ref/balance and /api/accounts/:ref/solde
func (h *AccountHandler) GetBalance(c *gin.Context) {
	balance, err := h.Service.GetBalance(c.Request.Context(), caller(c), c.Param("ref"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// POST /api/accounts/:ref/credit
func (h *AccountHandler) Credit(c *gin.Context) {
	h.move(c, h.Service.Credit)
}

// POST /api/accounts/:ref/debit
func (h *AccountHandler) Debit(c *gin.Context) {
	h.move(c, h.Service.Debit)
}

func (h *AccountHandler) move(c *gin.Context, fn func(context.Context, identity.Principal, string, decimal.Decimal) (*models.Account, error)) {
	var req dto.Amount
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	account, err := fn(c.Request.Context(), caller(c), c.Param("ref"), req.Amount)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// POST /api/transfers
func (h *AccountHandler) Transfer(c *gin.Context) {
	var req dto.Transfer
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	result, err := h.Service.Transfer(c.Request.Context(), caller(c), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/accounts/:ref/statement?from=2026-01-01&to=2026-01-31
func (h *AccountHandler) Statement(c *gin.Context) {
	from, to, err := period(c)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	st, err := h.Service.Statement(c.Request.Context(), caller(c), c.Param("ref"), from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// GET /api/accounts/:ref/statement/csv
func (h *AccountHandler) StatementCSV(c *gin.Context) {
	from, to, err := period(c)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}

	data, err := h.Service.StatementCSV(c.Request.Context(), caller(c), c.Param("ref"), from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	filename := fmt.Sprintf("statement-%s-%s.csv", c.Param("ref"), from.Format(dateLayout))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

// GET /api/users/:userId/primary-account
func (h *AccountHandler) PrimaryAccount(c *gin.Context) {
	account, err := h.Service.PrimaryAccount(c.Request.Context(), caller(c), c.Param("userId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// PUT /api/accounts/:ref/status
func (h *AccountHandler) SetStatus(c *gin.Context) {
	var req dto.StatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	if err := h.Service.SetStatus(c.Request.Context(), caller(c), c.Param("ref"), req.Status); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleEvents routes saga messages to the service.
func (h *AccountHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case events.TopicPaymentsCreated:
		var event events.PaymentCreatedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error unmarshalling PaymentCreatedEvent: %s", err.Error())
			return fmt.Errorf("error parsing payment created event %w", err)
		}
		return h.Service.VerifyFunds(ctx, event)
	case events.TopicAccountDebitRequested, events.TopicAccountCreditRequest:
		var event events.AccountMovementRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error unmarshalling AccountMovementRequestedEvent: %s", err.Error())
			return fmt.Errorf("error parsing account movement event %w", err)
		}
		if topic == events.TopicAccountDebitRequested {
			return h.Service.DebitForPayment(ctx, event)
		}
		return h.Service.RefundPayment(ctx, event)
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

// period parses from/to dates. to is inclusive; the returned end is the next midnight.
// Both default to the current month.
func period(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q", v)
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q", v)
		}
		to = t.AddDate(0, 0, 1)
	}
	return from, to, nil
}

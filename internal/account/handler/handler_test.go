package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/account/dto"
	"github.com/jeffleon2/ebanking/internal/account/handler"
	"github.com/jeffleon2/ebanking/internal/account/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var alice = identity.Principal{UserID: "alice", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.AccountHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), alice))
	})
	r.GET("/api/accounts/:ref/solde", h.GetBalance)
	r.POST("/api/accounts/:ref/debit", h.Debit)
	r.GET("/api/accounts/:ref/statement/csv", h.StatementCSV)
	return r
}

func TestGetBalance_Solde(t *testing.T) {
	svc := mocks.NewMockAccountService(t)
	r := newRouter(handler.NewAccountHandler(svc))

	svc.EXPECT().
		GetBalance(mock.Anything, alice, "ref-1").
		Return(&dto.Balance{AccountRef: "ref-1", Balance: decimal.RequireFromString("42.5"), Currency: "EUR"}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/accounts/ref-1/solde", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"account_ref":"ref-1","balance":"42.5","currency":"EUR"}`, w.Body.String())
}

func TestDebit_InsufficientFundsMapsTo422(t *testing.T) {
	svc := mocks.NewMockAccountService(t)
	r := newRouter(handler.NewAccountHandler(svc))

	svc.EXPECT().
		Debit(mock.Anything, alice, "ref-1", mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(500)) })).
		Return(nil, models.ErrInsufficientFunds).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/accounts/ref-1/debit", strings.NewReader(`{"amount": 500}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "account: insufficient funds", body["error"])
}

func TestDebit_MalformedBody(t *testing.T) {
	svc := mocks.NewMockAccountService(t)
	r := newRouter(handler.NewAccountHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/accounts/ref-1/debit", strings.NewReader(`{"amount":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Debit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatementCSV_ParsesInclusivePeriod(t *testing.T) {
	svc := mocks.NewMockAccountService(t)
	r := newRouter(handler.NewAccountHandler(svc))
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	svc.EXPECT().StatementCSV(mock.Anything, alice, "ref-1", from, to).Return([]byte("DATE,TYPE,AMOUNT,STATUS,MEMO\n"), nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/accounts/ref-1/statement/csv?from=2026-03-01&to=2026-03-31", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "statement-ref-1-2026-03-01.csv")
}

func TestStatementCSV_BadDate(t *testing.T) {
	svc := mocks.NewMockAccountService(t)
	r := newRouter(handler.NewAccountHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/accounts/ref-1/statement/csv?from=03-01-2026", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleEvents_RoutesByTopic(t *testing.T) {
	svc := mocks.NewMockAccountService(t)
	h := handler.NewAccountHandler(svc)
	ctx := context.Background()

	created, _ := json.Marshal(events.PaymentCreatedEvent{ID: "pay-1", SourceAccountRef: "ref-1"})
	movement, _ := json.Marshal(events.AccountMovementRequestedEvent{PaymentID: "pay-1", AccountRef: "ref-1"})

	svc.EXPECT().VerifyFunds(ctx, mock.MatchedBy(func(e events.PaymentCreatedEvent) bool { return e.ID == "pay-1" })).Return(nil).Once()
	svc.EXPECT().DebitForPayment(ctx, mock.MatchedBy(func(e events.AccountMovementRequestedEvent) bool { return e.PaymentID == "pay-1" })).Return(nil).Once()
	svc.EXPECT().RefundPayment(ctx, mock.MatchedBy(func(e events.AccountMovementRequestedEvent) bool { return e.AccountRef == "ref-1" })).Return(nil).Once()

	assert.NoError(t, h.HandleEvents(ctx, events.TopicPaymentsCreated, created))
	assert.NoError(t, h.HandleEvents(ctx, events.TopicAccountDebitRequested, movement))
	assert.NoError(t, h.HandleEvents(ctx, events.TopicAccountCreditRequest, movement))
}

func TestHandleEvents_Errors(t *testing.T) {
	svc := mocks.NewMockAccountService(t)
	h := handler.NewAccountHandler(svc)

	assert.Error(t, h.HandleEvents(context.Background(), events.TopicPaymentsCreated, []byte(`{"invalid json`)))
	assert.ErrorContains(t, h.HandleEvents(context.Background(), "unknown.topic", []byte(`{}`)), "topic not allowed")
}

package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/fraud/dto"
	"github.com/jeffleon2/ebanking/internal/fraud/handler"
	"github.com/jeffleon2/ebanking/internal/fraud/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/fraud/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func paymentCreated(t *testing.T, id string, amount int64) []byte {
	raw, err := json.Marshal(events.PaymentCreatedEvent{
		ID:       id,
		Amount:   decimal.NewFromInt(amount),
		Currency: "USD",
		Status:   "PENDING",
		UserID:   "customer-456",
		TraceID:  "trace-789",
	})
	assert.NoError(t, err)
	return raw
}

func TestHandler_Success(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)
	h := handler.Fraud(mockService)
	ctx := context.Background()

	mockService.EXPECT().
		EvaluatePayment(ctx, mock.MatchedBy(func(e events.PaymentCreatedEvent) bool {
			return e.ID == "payment-123" && e.Amount.Equal(decimal.NewFromInt(5000)) && e.TraceID == "trace-789"
		})).
		Return(nil).
		Once()

	err := h.Handler(ctx, events.TopicPaymentsCreated, paymentCreated(t, "payment-123", 5000))

	assert.NoError(t, err)
}

func TestHandler_UnmarshalError(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)
	h := handler.Fraud(mockService)

	err := h.Handler(context.Background(), events.TopicPaymentsCreated, []byte(`{"invalid json`))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected end of JSON input")
	mockService.AssertNotCalled(t, "EvaluatePayment", mock.Anything, mock.Anything)
}

func TestHandler_ServiceError(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)
	h := handler.Fraud(mockService)
	ctx := context.Background()
	expectedError := errors.New("service evaluation failed")

	mockService.EXPECT().EvaluatePayment(ctx, mock.Anything).Return(expectedError).Once()

	err := h.Handler(ctx, events.TopicPaymentsCreated, paymentCreated(t, "payment-999", 15000))

	assert.Equal(t, expectedError, err)
}

func TestHandler_StatusChanged(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)
	h := handler.Fraud(mockService)
	ctx := context.Background()

	mockService.EXPECT().
		RecordOutcome(ctx, mock.MatchedBy(func(e events.PaymentStatusChangedEvent) bool {
			return e.PaymentID == "payment-1" && e.To == "COMPLETED"
		})).
		Return(nil).
		Once()

	raw := []byte(`{"payment_id":"payment-1","from":"VALIDATED","to":"COMPLETED"}`)
	assert.NoError(t, h.Handler(ctx, events.TopicPaymentStatusChanged, raw))
	assert.Error(t, h.Handler(ctx, "wallet.debit.requested", raw))
}

func TestFraud_Constructor(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)

	h := handler.Fraud(mockService)

	assert.NotNil(t, h)
	assert.Equal(t, mockService, h.FraudService)
}

func newRouter(h *handler.FraudHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/fraud/checks/:paymentId", h.GetCheck)
	r.PUT("/api/fraud/limits/:accountRef", h.SetLimit)
	r.DELETE("/api/fraud/blacklist/:iban", h.RemoveBlacklist)
	return r
}

func TestGetCheck_NotFound(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)
	r := newRouter(handler.Fraud(mockService))

	mockService.EXPECT().GetCheck(mock.Anything, "p-404").Return(nil, models.ErrCheckNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/fraud/checks/p-404", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetLimit(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)
	r := newRouter(handler.Fraud(mockService))

	mockService.EXPECT().
		SetLimit(mock.Anything, "ref-1", mock.MatchedBy(func(l *dto.Limit) bool {
			return l.Currency == "EUR" && l.DailyLimit.Equal(decimal.NewFromInt(2000))
		})).
		Return(&models.AccountLimit{AccountRef: "ref-1", Currency: "EUR", DailyLimit: decimal.NewFromInt(2000)}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/fraud/limits/ref-1", strings.NewReader(`{"currency":"EUR","daily_limit":2000}`)))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRemoveBlacklist(t *testing.T) {
	mockService := mocks.NewMockFraudServiceIn(t)
	r := newRouter(handler.Fraud(mockService))

	mockService.EXPECT().RemoveBlacklist(mock.Anything, "DE89370400440532013000").Return(nil).Once()
	mockService.EXPECT().RemoveBlacklist(mock.Anything, "GB00").Return(models.ErrNotBlacklisted).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/fraud/blacklist/DE89370400440532013000", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/fraud/blacklist/GB00", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

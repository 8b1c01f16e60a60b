package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/payment/dto"
	"github.com/jeffleon2/ebanking/internal/payment/handler"
	"github.com/jeffleon2/ebanking/internal/payment/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var ops = identity.Principal{UserID: "ops", Roles: []string{identity.RoleAdmin}}

func newRouter(h *handler.PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), ops))
	})
	r.POST("/api/payments", h.CreatePayment)
	r.GET("/api/payments", h.ListPayments)
	r.POST("/api/payments/:id/review", h.Review)
	return r
}

func TestCreatePayment_Accepted(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	r := newRouter(handler.NewPaymentHandler(svc))

	svc.EXPECT().
		CreatePayment(mock.Anything, ops, mock.MatchedBy(func(req *dto.CreatePayment) bool {
			return req.SourceAccountRef == "ref-1" && req.Type == "INSTANT"
		})).
		Return(&models.Payment{ID: "pay-1", Status: models.StatusPending}, nil).
		Once()

	body := `{"source_account_ref":"ref-1","destination_iban":"DE89370400440532013000","amount":"10.50","currency":"EUR","type":"INSTANT"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, w.Code)
	var got models.Payment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestListPayments_PassesFilters(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	r := newRouter(handler.NewPaymentHandler(svc))

	svc.EXPECT().ListPayments(mock.Anything, ops, "PENDING_MANUAL_REVIEW", true).Return([]models.Payment{}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments?status=PENDING_MANUAL_REVIEW&all=true", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestReview_ConflictWhenNotHeld(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	r := newRouter(handler.NewPaymentHandler(svc))

	svc.EXPECT().Review(mock.Anything, ops, "pay-1", &dto.Review{Approve: true}).Return(nil, models.ErrInvalidTransition).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/payments/pay-1/review", strings.NewReader(`{"approve":true}`)))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleEvents(t *testing.T) {
	svc := mocks.NewMockPaymentService(t)
	h := handler.NewPaymentHandler(svc)
	ctx := context.Background()

	fraud, _ := json.Marshal(events.FraudCheckEvent{ID: "pay-1", Status: events.StatusApproved})
	funds, _ := json.Marshal(events.AccountResponseEvent{PaymentID: "pay-1", Status: events.StatusApproved})

	svc.EXPECT().HandleFraudResult(ctx, mock.MatchedBy(func(e events.FraudCheckEvent) bool { return e.ID == "pay-1" })).Return(nil).Once()
	svc.EXPECT().HandleFundsResult(ctx, mock.MatchedBy(func(e events.AccountResponseEvent) bool { return e.PaymentID == "pay-1" })).Return(nil).Once()
	svc.EXPECT().HandleDebitResult(ctx, mock.MatchedBy(func(e events.AccountResponseEvent) bool { return e.PaymentID == "pay-1" })).Return(nil).Once()

	assert.NoError(t, h.HandleEvents(ctx, events.TopicPaymentsChecked, fraud))
	assert.NoError(t, h.HandleEvents(ctx, events.TopicAccountFundsVerified, funds))
	assert.NoError(t, h.HandleEvents(ctx, events.TopicAccountDebitCompleted, funds))
	assert.Error(t, h.HandleEvents(ctx, events.TopicPaymentsChecked, []byte(`not json`)))
	assert.Error(t, h.HandleEvents(ctx, events.TopicPaymentsCreated, funds))
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/card/dto"
	"github.com/jeffleon2/ebanking/internal/card/handler"
	"github.com/jeffleon2/ebanking/internal/card/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/card/models"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var bob = identity.Principal{UserID: "user-2", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.CardHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), bob))
	})
	r.POST("/api/cards", h.Create)
	r.POST("/api/cards/pay", h.Pay)
	r.POST("/api/cards/:id/debit", h.Debit)
	r.PUT("/api/cards/:id/block", h.Block)
	return r
}

func TestCreate(t *testing.T) {
	svc := mocks.NewMockCardService(t)
	r := newRouter(handler.NewCardHandler(svc))

	svc.EXPECT().CreateCard(mock.Anything, bob, &dto.CreateCard{Currency: "EUR"}).
		Return(&dto.Issued{Card: dto.Card{ID: "card-1", MaskedNumber: "**** **** **** 1111"}, Number: "4111111111111111", CVV: "123"}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cards", strings.NewReader(`{"currency":"EUR"}`)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"cvv":"123"`)
	assert.Contains(t, w.Body.String(), `"masked_number":"**** **** **** 1111"`)
}

func TestCreate_Duplicate(t *testing.T) {
	svc := mocks.NewMockCardService(t)
	r := newRouter(handler.NewCardHandler(svc))

	svc.EXPECT().CreateCard(mock.Anything, bob, mock.Anything).Return(nil, models.ErrDuplicateCurrency).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cards", strings.NewReader(`{"currency":"EUR"}`)))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDebit(t *testing.T) {
	svc := mocks.NewMockCardService(t)
	r := newRouter(handler.NewCardHandler(svc))

	svc.EXPECT().
		Debit(mock.Anything, bob, "card-1", mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(25)) })).
		Return(nil, models.ErrLimitExceeded).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cards/card-1/debit", strings.NewReader(`{"amount":25}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestPay(t *testing.T) {
	svc := mocks.NewMockCardService(t)
	r := newRouter(handler.NewCardHandler(svc))

	svc.EXPECT().Pay(mock.Anything, bob, mock.MatchedBy(func(p *dto.Pay) bool {
		return p.CVV == "321" && p.TargetCurrency == "USD"
	})).Return(&dto.Receipt{TransactionID: "tx-1", Status: models.TransactionCompleted}, nil).Once()

	w := httptest.NewRecorder()
	body := `{"number":"4111111111111111","cvv":"321","amount":"10.00","target_currency":"USD"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cards/pay", strings.NewReader(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"transaction_id":"tx-1"`)
}

func TestBlock_Forbidden(t *testing.T) {
	svc := mocks.NewMockCardService(t)
	r := newRouter(handler.NewCardHandler(svc))

	svc.EXPECT().BlockCard(mock.Anything, bob, "card-9").Return(nil, models.ErrNotOwner).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/cards/card-9/block", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

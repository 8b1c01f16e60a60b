package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/wallet/dto"
	"github.com/jeffleon2/ebanking/internal/wallet/handler"
	"github.com/jeffleon2/ebanking/internal/wallet/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/wallet/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var alice = identity.Principal{UserID: "alice", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.WalletHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), alice))
	})
	r.POST("/api/wallets", h.CreateWallet)
	r.GET("/api/wallets/:ref", h.Summary)
	r.POST("/api/wallets/:ref/expenses", h.AddExpense)
	return r
}

func TestWallet_Constructor(t *testing.T) {
	svc := mocks.NewMockWalletServiceIn(t)

	h := handler.Wallet(svc)

	assert.NotNil(t, h)
	assert.Equal(t, svc, h.WalletService)
}

func TestCreateWallet(t *testing.T) {
	svc := mocks.NewMockWalletServiceIn(t)
	r := newRouter(handler.Wallet(svc))

	svc.EXPECT().
		CreateWallet(mock.Anything, alice, mock.MatchedBy(func(req *dto.CreateWallet) bool {
			return req.Name == "Holidays" && req.BudgetLimit.Equal(decimal.NewFromInt(800))
		})).
		Return(&models.Wallet{WalletRef: "WLT-12345678"}, nil).
		Once()

	w := httptest.NewRecorder()
	body := `{"name":"Holidays","account_ref":"acc-1","budget_limit":"800"}`
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/wallets", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "WLT-12345678")
}

func TestAddExpense_OverBudgetMapsTo422(t *testing.T) {
	svc := mocks.NewMockWalletServiceIn(t)
	r := newRouter(handler.Wallet(svc))

	svc.EXPECT().AddExpense(mock.Anything, alice, "WLT-1", mock.Anything).Return(nil, models.ErrBudgetExceeded).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/wallets/WLT-1/expenses", strings.NewReader(`{"amount":10,"category":"food"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"expense exceeds the remaining budget: unprocessable"}`, w.Body.String())
}

func TestAddExpense_MalformedBody(t *testing.T) {
	svc := mocks.NewMockWalletServiceIn(t)
	r := newRouter(handler.Wallet(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/wallets/WLT-1/expenses", strings.NewReader(`{"amount":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSummary_NotFound(t *testing.T) {
	svc := mocks.NewMockWalletServiceIn(t)
	r := newRouter(handler.Wallet(svc))

	svc.EXPECT().Summary(mock.Anything, alice, "WLT-404").Return(nil, models.ErrWalletNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/wallets/WLT-404", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

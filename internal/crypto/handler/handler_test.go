package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/crypto/dto"
	"github.com/jeffleon2/ebanking/internal/crypto/handler"
	"github.com/jeffleon2/ebanking/internal/crypto/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/crypto/models"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var bob = identity.Principal{UserID: "bob", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.CryptoHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), bob))
	})
	r.GET("/api/crypto/prices", h.Prices)
	r.POST("/api/crypto/trade", h.Trade)
	return r
}

func TestPrices(t *testing.T) {
	svc := mocks.NewMockCryptoService(t)
	r := newRouter(handler.NewCryptoHandler(svc))

	svc.EXPECT().ListPrices(mock.Anything).Return([]dto.Price{{Symbol: "BTC", Price: decimal.NewFromInt(60000), Currency: "EUR"}}).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/crypto/prices", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"symbol":"BTC","price":"60000","currency":"EUR"}]`, w.Body.String())
}

func TestTrade_PriceUnavailableMapsTo503(t *testing.T) {
	svc := mocks.NewMockCryptoService(t)
	r := newRouter(handler.NewCryptoHandler(svc))

	svc.EXPECT().
		Trade(mock.Anything, bob, mock.MatchedBy(func(req *dto.Trade) bool { return req.Symbol == "BTC" && req.Type == "BUY" })).
		Return(nil, models.ErrPriceUnavailable).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/crypto/trade", strings.NewReader(`{"symbol":"BTC","type":"BUY","quantity":"0.1"}`)))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestTrade_Created(t *testing.T) {
	svc := mocks.NewMockCryptoService(t)
	r := newRouter(handler.NewCryptoHandler(svc))

	svc.EXPECT().Trade(mock.Anything, bob, mock.Anything).Return(&models.CryptoTransaction{ID: "tx-1", Type: models.TradeSell}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/crypto/trade", strings.NewReader(`{"symbol":"ETH","type":"SELL","quantity":1}`)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"SELL"`)
}

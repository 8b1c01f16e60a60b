package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/analytics/dto"
	"github.com/jeffleon2/ebanking/internal/analytics/handler"
	"github.com/jeffleon2/ebanking/internal/analytics/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/analytics/models"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var erin = identity.Principal{UserID: "erin", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.AnalyticsHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), erin))
	})
	r.GET("/api/analytics/expenses/total", h.TotalExpenses)
	r.GET("/api/analytics/budget", h.CheckBudget)
	return r
}

func TestTotalExpenses(t *testing.T) {
	svc := mocks.NewMockAnalyticsService(t)
	r := newRouter(handler.NewAnalyticsHandler(svc))

	svc.EXPECT().
		TotalExpenses(mock.Anything, erin, "food").
		Return(&dto.CategoryTotal{Category: "FOOD", Total: decimal.RequireFromString("12.5")}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/expenses/total?category=food", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"category":"FOOD","total":"12.5"}`, w.Body.String())
}

func TestCheckBudget(t *testing.T) {
	svc := mocks.NewMockAnalyticsService(t)
	r := newRouter(handler.NewAnalyticsHandler(svc))

	svc.EXPECT().
		CheckBudget(mock.Anything, erin, "WLT-1", mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(500)) })).
		Return(&models.Alert{Message: "Budget exceeded", Date: "2026-05-06", Success: false}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/budget?walletRef=WLT-1&limit=500", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Budget exceeded","date":"2026-05-06","success":false}`, w.Body.String())
}

func TestCheckBudget_BadLimit(t *testing.T) {
	svc := mocks.NewMockAnalyticsService(t)
	r := newRouter(handler.NewAnalyticsHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/analytics/budget?walletRef=WLT-1&limit=lots", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

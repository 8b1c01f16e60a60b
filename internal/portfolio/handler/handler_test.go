package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/portfolio/dto"
	"github.com/jeffleon2/ebanking/internal/portfolio/handler"
	"github.com/jeffleon2/ebanking/internal/portfolio/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var carol = identity.Principal{UserID: "user-3", Roles: []string{identity.RoleClient}}

func newRouter(p *handler.PortfolioHandler, g *handler.GatewayHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), carol))
	})
	r.POST("/api/portefeuilles", p.Create)
	r.POST("/api/portefeuilles/:id/debit", p.Debit)
	r.PUT("/api/cmi/:compteId/:utilisateurId/assigner-utilisateur", g.AssignUser)
	r.POST("/api/cmi/alimentations", g.Fund)
	return r
}

func TestCreate_StatusFollowsAlert(t *testing.T) {
	svc := mocks.NewMockPortfolioService(t)
	r := newRouter(handler.NewPortfolioHandler(svc), handler.NewGatewayHandler(mocks.NewMockGatewayService(t)))

	svc.EXPECT().CreatePortfolio(mock.Anything, carol, &dto.CreatePortfolio{Currency: "EUR"}).
		Return(&models.Alert{Message: "portfolio created in EUR", Success: true}, nil).Once()
	svc.EXPECT().CreatePortfolio(mock.Anything, carol, &dto.CreatePortfolio{Currency: "USD"}).
		Return(&models.Alert{Message: "a portfolio already exists", Success: false}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/portefeuilles", strings.NewReader(`{"currency":"EUR"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/portefeuilles", strings.NewReader(`{"currency":"USD"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestDebit(t *testing.T) {
	svc := mocks.NewMockPortfolioService(t)
	r := newRouter(handler.NewPortfolioHandler(svc), handler.NewGatewayHandler(mocks.NewMockGatewayService(t)))

	svc.EXPECT().
		Debit(mock.Anything, carol, "p-1", mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(30)) })).
		Return(nil, models.ErrInsufficientFunds).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/portefeuilles/p-1/debit", strings.NewReader(`{"amount":30}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/portefeuilles/p-1/debit", strings.NewReader(`{"amount":-1}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignUser(t *testing.T) {
	gw := mocks.NewMockGatewayService(t)
	r := newRouter(handler.NewPortfolioHandler(mocks.NewMockPortfolioService(t)), handler.NewGatewayHandler(gw))

	gw.EXPECT().AssignUser(mock.Anything, carol, "MA64011519000001", "user-7").Return(true, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/cmi/MA64011519000001/user-7/assigner-utilisateur", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Body.String())
}

func TestFund(t *testing.T) {
	gw := mocks.NewMockGatewayService(t)
	r := newRouter(handler.NewPortfolioHandler(mocks.NewMockPortfolioService(t)), handler.NewGatewayHandler(gw))

	gw.EXPECT().FundPortfolio(mock.Anything, carol, mock.MatchedBy(func(f *dto.FundExisting) bool { return f.PortfolioID == "p-1" })).
		Return(&models.Alert{Message: "portfolio funded with 10 EUR", Date: "2026-04-02", Success: true}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/cmi/alimentations", strings.NewReader(`{"portfolio_id":"p-1","amount":110}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"portfolio funded with 10 EUR","date":"2026-04-02","success":true}`, w.Body.String())
}

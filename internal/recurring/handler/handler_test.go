package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/recurring/dto"
	"github.com/jeffleon2/ebanking/internal/recurring/handler"
	"github.com/jeffleon2/ebanking/internal/recurring/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/recurring/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var erin = identity.Principal{UserID: "user-5", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.RecurringHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), erin))
	})
	r.POST("/api/recurring", h.Create)
	r.PUT("/api/recurring/:id/cancel", h.Cancel)
	r.POST("/api/recurring/run", h.Run)
	return r
}

func TestCreate(t *testing.T) {
	svc := mocks.NewMockRecurringService(t)
	r := newRouter(handler.NewRecurringHandler(svc))

	svc.EXPECT().Create(mock.Anything, erin, mock.MatchedBy(func(req *dto.CreateRecurring) bool {
		return req.Frequency == "MENSUEL" && req.Method == "CARD" && req.StartDate != nil
	})).Return(&models.RecurringPayment{ID: "r-1", Frequency: models.Monthly}, nil).Once()

	body := `{"provider":"LOYER","payment_method":"CARD","source_id":"card-1","currency":"MAD","amount":4500,"frequency":"MENSUEL","start_date":"2026-07-01T00:00:00Z"}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/recurring", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"frequency":"MONTHLY"`)
}

func TestCancel_NotFound(t *testing.T) {
	svc := mocks.NewMockRecurringService(t)
	r := newRouter(handler.NewRecurringHandler(svc))

	svc.EXPECT().Cancel(mock.Anything, erin, "r-404").Return(nil, models.ErrRecurringNotFound).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/recurring/r-404/cancel", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun(t *testing.T) {
	svc := mocks.NewMockRecurringService(t)
	r := newRouter(handler.NewRecurringHandler(svc))

	svc.EXPECT().RunDue(mock.Anything).Return(dto.RunReport{Due: 2, Succeeded: 2}).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/recurring/run", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"due":2,"succeeded":2,"failed":0,"skipped":0}`, w.Body.String())
}

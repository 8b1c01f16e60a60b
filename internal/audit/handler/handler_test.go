package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/audit/dto"
	"github.com/jeffleon2/ebanking/internal/audit/handler"
	"github.com/jeffleon2/ebanking/internal/audit/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/audit/models"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var carol = identity.Principal{UserID: "carol", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.AuditHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), carol))
	})
	r.POST("/api/audit/events", h.Record)
	r.GET("/api/audit/users/:userId/history", h.UserHistory)
	return r
}

func TestRecord_PassesClientDetails(t *testing.T) {
	svc := mocks.NewMockAuditService(t)
	r := newRouter(handler.NewAuditHandler(svc))
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	svc.EXPECT().
		Record(mock.Anything, carol, mock.MatchedBy(func(e *dto.Event) bool { return e.ActionType == "LOGIN" }), "192.0.2.1", "probe/1.0").
		Return(&models.AuditLog{ID: "log-1", Timestamp: ts}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/api/audit/events", strings.NewReader(`{"action_type":"LOGIN"}`))
	req.RemoteAddr = "192.0.2.1:5555"
	req.Header.Set("User-Agent", "probe/1.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"Audit event logged successfully","audit_log_id":"log-1","timestamp":"2026-01-02T03:04:05Z"}`, w.Body.String())
}

func TestUserHistory_ParsesFilters(t *testing.T) {
	svc := mocks.NewMockAuditService(t)
	r := newRouter(handler.NewAuditHandler(svc))

	svc.EXPECT().
		UserHistory(mock.Anything, carol, "carol", mock.MatchedBy(func(f models.Filter) bool {
			return f.Page == 2 && f.Size == 10 && f.Status == "FAILURE" &&
				f.From != nil && f.From.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return(&dto.Page{UserID: "carol"}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit/users/carol/history?page=2&size=10&status=FAILURE&startDate=2026-02-01", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHistory_BadQuery(t *testing.T) {
	svc := mocks.NewMockAuditService(t)
	r := newRouter(handler.NewAuditHandler(svc))

	for _, q := range []string{"page=first", "endDate=yesterday"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit/users/carol/history?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestUserHistory_ForbiddenForOtherUser(t *testing.T) {
	svc := mocks.NewMockAuditService(t)
	r := newRouter(handler.NewAuditHandler(svc))

	svc.EXPECT().UserHistory(mock.Anything, carol, "dave", mock.Anything).Return(nil, models.ErrNotOwnHistory).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/audit/users/dave/history", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

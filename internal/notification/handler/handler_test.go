package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/notification/dto"
	"github.com/jeffleon2/ebanking/internal/notification/handler"
	"github.com/jeffleon2/ebanking/internal/notification/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/notification/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var dave = identity.Principal{UserID: "dave", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.NotificationHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), dave))
	})
	r.POST("/api/notifications/send", h.Send)
	r.GET("/api/notifications", h.List)
	return r
}

func TestSend_OK(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	r := newRouter(handler.NewNotificationHandler(svc))

	svc.EXPECT().
		Send(mock.Anything, dave, mock.MatchedBy(func(s *dto.Send) bool { return s.To == "d@bank.ma" })).
		Return(&dto.Result{Status: dto.ResultOK, Details: "Notification sent", NotificationID: "n-1"}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/notifications/send", strings.NewReader(`{"to":"d@bank.ma","message":"hi"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","details":"Notification sent","notification_id":"n-1"}`, w.Body.String())
}

func TestSend_FailedIsBadRequest(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	r := newRouter(handler.NewNotificationHandler(svc))

	svc.EXPECT().Send(mock.Anything, dave, mock.Anything).Return(dto.Failed("Field 'to' is required"), nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/notifications/send", strings.NewReader(`{"message":"hi"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":"FAILED","details":"Field 'to' is required"}`, w.Body.String())
}

func TestList(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	r := newRouter(handler.NewNotificationHandler(svc))

	svc.EXPECT().List(mock.Anything, dave).Return([]models.Notification{{ID: "n-1"}}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"n-1"`)
}

func TestHandleEvents_PassesError(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	h := handler.NewNotificationHandler(svc)
	boom := errors.New("db down")

	svc.EXPECT().Consume(mock.Anything, "recurring.executed", []byte(`{}`)).Return(boom).Once()

	assert.ErrorIs(t, h.HandleEvents(context.Background(), "recurring.executed", []byte(`{}`)), boom)
}

package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/assistant/dto"
	"github.com/jeffleon2/ebanking/internal/assistant/handler"
	"github.com/jeffleon2/ebanking/internal/assistant/handler/mocks"
	"github.com/jeffleon2/ebanking/internal/assistant/models"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var gina = identity.Principal{UserID: "gina", Roles: []string{identity.RoleClient}}

func newRouter(h *handler.AssistantHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), gina))
	})
	r.POST("/api/assistant/chat", h.Chat)
	r.GET("/api/assistant/history", h.History)
	return r
}

func TestChat(t *testing.T) {
	svc := mocks.NewMockAssistantService(t)
	r := newRouter(handler.NewAssistantHandler(svc))

	svc.EXPECT().
		Chat(mock.Anything, gina, &dto.ChatRequest{Message: "help"}).
		Return(&dto.ChatResponse{Source: models.SourceIntent, Response: "I can help", Intent: "HELP"}, nil).
		Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/assistant/chat", strings.NewReader(`{"message":"help"}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"source":"INTENT","response":"I can help","intent":"HELP"}`, w.Body.String())
}

func TestChat_BadJSON(t *testing.T) {
	svc := mocks.NewMockAssistantService(t)
	r := newRouter(handler.NewAssistantHandler(svc))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/assistant/chat", strings.NewReader(`{"message":`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	svc := mocks.NewMockAssistantService(t)
	r := newRouter(handler.NewAssistantHandler(svc))

	svc.EXPECT().History(mock.Anything, gina).Return([]models.ConversationLog{{ID: "c-1", Source: models.SourceLLM}}, nil).Once()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/assistant/history", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"LLM"`)
}

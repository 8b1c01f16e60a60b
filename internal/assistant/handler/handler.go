package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/assistant/dto"
	"github.com/jeffleon2/ebanking/internal/assistant/models"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

type AssistantService interface {
	Chat(ctx context.Context, caller identity.Principal, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, caller identity.Principal) ([]models.ConversationLog, error)
}

type AssistantHandler struct {
	Service AssistantService
}

func NewAssistantHandler(s AssistantService) *AssistantHandler {
	return &AssistantHandler{Service: s}
}

// POST /api/assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	resp, err := h.Service.Chat(c.Request.Context(), caller(c), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /api/assistant/history
func (h *AssistantHandler) History(c *gin.Context) {
	logs, err := h.Service.History(c.Request.Context(), caller(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

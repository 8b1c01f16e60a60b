package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/notification/dto"
	"github.com/jeffleon2/ebanking/internal/notification/models"
)

type NotificationService interface {
	Send(ctx context.Context, caller identity.Principal, req *dto.Send) (*dto.Result, error)
	List(ctx context.Context, caller identity.Principal) ([]models.Notification, error)
	Consume(ctx context.Context, topic string, value []byte) error
}

type NotificationHandler struct {
	Service NotificationService
}

func NewNotificationHandler(s NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: s}
}

// HandleEvents turns a bus message into a notification.
func (h *NotificationHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	return h.Service.Consume(ctx, topic, value)
}

// POST /api/notifications/send
func (h *NotificationHandler) Send(c *gin.Context) {
	var req dto.Send
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	res, err := h.Service.Send(c.Request.Context(), caller(c), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if res.Status == dto.ResultFailed {
		c.JSON(http.StatusBadRequest, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	list, err := h.Service.List(c.Request.Context(), caller(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

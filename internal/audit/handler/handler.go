package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/internal/audit/dto"
	"github.com/jeffleon2/ebanking/internal/audit/models"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/middleware"
)

type AuditService interface {
	Consume(ctx context.Context, key, value []byte) error
	Record(ctx context.Context, caller identity.Principal, req *dto.Event, ip string, userAgent string) (*models.AuditLog, error)
	RecordExternal(ctx context.Context, req *dto.Event) (*models.AuditLog, error)
	UserHistory(ctx context.Context, caller identity.Principal, userID string, f models.Filter) (*dto.Page, error)
	History(ctx context.Context, f models.Filter) (*dto.Page, error)
	Errors(ctx context.Context, f models.Filter) (*dto.Page, error)
	UserStats(ctx context.Context, caller identity.Principal, userID string) (*dto.UserStats, error)
	ErrorStats(ctx context.Context) (*dto.ErrorStats, error)
}

type AuditHandler struct {
	Service AuditService
}

func NewAuditHandler(s AuditService) *AuditHandler {
	return &AuditHandler{Service: s}
}

// HandleEvents stores a message of the audit topic.
func (h *AuditHandler) HandleEvents(ctx context.Context, key, value []byte) error {
	return h.Service.Consume(ctx, key, value)
}

// POST /api/audit/events
func (h *AuditHandler) Record(c *gin.Context) {
	var req dto.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	entry, err := h.Service.Record(c.Request.Context(), caller(c), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, logged("Audit event logged successfully", entry))
}

// POST /api/audit/events/external
func (h *AuditHandler) RecordExternal(c *gin.Context) {
	var req dto.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	entry, err := h.Service.RecordExternal(c.Request.Context(), &req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, logged("External audit event received and logged", entry))
}

// GET /api/audit/users/:userId/history
func (h *AuditHandler) UserHistory(c *gin.Context) {
	f, err := filter(c)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	page, err := h.Service.UserHistory(c.Request.Context(), caller(c), c.Param("userId"), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/audit/history
func (h *AuditHandler) History(c *gin.Context) {
	f, err := filter(c)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	page, err := h.Service.History(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/audit/errors
func (h *AuditHandler) Errors(c *gin.Context) {
	f, err := filter(c)
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	page, err := h.Service.Errors(c.Request.Context(), f)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/audit/stats/user/:userId
func (h *AuditHandler) UserStats(c *gin.Context) {
	stats, err := h.Service.UserStats(c.Request.Context(), caller(c), c.Param("userId"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /api/audit/stats/errors
func (h *AuditHandler) ErrorStats(c *gin.Context) {
	stats, err := h.Service.ErrorStats(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func logged(msg string, entry *models.AuditLog) dto.Logged {
	return dto.Logged{
		Message:    msg,
		AuditLogID: entry.ID,
		Timestamp:  entry.Timestamp.Format(time.RFC3339),
	}
}

// filter reads page, size, userId, actionType, serviceName, status,
// startDate and endDate. Dates are RFC 3339 timestamps or plain days.
func filter(c *gin.Context) (models.Filter, error) {
	f := models.Filter{
		UserID:      c.Query("userId"),
		ActionType:  c.Query("actionType"),
		ServiceName: c.Query("serviceName"),
		Status:      c.Query("status"),
	}
	var err error
	if f.Page, err = intQuery(c, "page"); err != nil {
		return f, err
	}
	if f.Size, err = intQuery(c, "size"); err != nil {
		return f, err
	}
	if f.From, err = timeQuery(c, "startDate"); err != nil {
		return f, err
	}
	if f.To, err = timeQuery(c, "endDate"); err != nil {
		return f, err
	}
	return f, nil
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return n, nil
}

func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%s must be a date or an RFC 3339 timestamp", name)
}

func caller(c *gin.Context) identity.Principal {
	p, _ := middleware.CurrentPrincipal(c)
	return p
}

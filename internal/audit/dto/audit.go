package dto

import (
	"strings"

	"github.com/jeffleon2/ebanking/internal/audit/models"
	"github.com/jeffleon2/ebanking/internal/events"
)

type Event struct {
	UserID        string `json:"user_id" validate:"max=64"`
	ActionType    string `json:"action_type" validate:"required,max=64"`
	ServiceName   string `json:"service_name" validate:"max=64"`
	Description   string `json:"description" validate:"max=2000"`
	Details       string `json:"details"`
	Status        string `json:"status" validate:"omitempty,oneof=SUCCESS FAILURE ERROR"`
	ErrorMessage  string `json:"error_message"`
	CorrelationID string `json:"correlation_id" validate:"max=64"`
}

func (e *Event) Sanitize() {
	e.ActionType = strings.ToUpper(strings.TrimSpace(e.ActionType))
	e.ServiceName = strings.TrimSpace(e.ServiceName)
	e.Status = strings.ToUpper(strings.TrimSpace(e.Status))
	if e.Status == "" {
		e.Status = models.StatusSuccess
	}
}

func (e *Event) ToEntity() *models.AuditLog {
	return &models.AuditLog{
		UserID:        e.UserID,
		ActionType:    e.ActionType,
		ServiceName:   e.ServiceName,
		Description:   e.Description,
		Details:       e.Details,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		CorrelationID: e.CorrelationID,
	}
}

// FromEvent maps a bus message to a log row.
func FromEvent(e events.AuditEvent) *models.AuditLog {
	status := strings.ToUpper(e.Status)
	if !models.ValidStatus(status) {
		status = models.StatusSuccess
	}
	return &models.AuditLog{
		UserID:        e.UserID,
		ActionType:    e.ActionType,
		ServiceName:   e.ServiceName,
		Description:   e.Description,
		Details:       e.Details,
		Status:        status,
		ErrorMessage:  e.ErrorMessage,
		CorrelationID: e.CorrelationID,
		Timestamp:     e.Timestamp,
	}
}

type Logged struct {
	Message    string `json:"message"`
	AuditLogID string `json:"audit_log_id"`
	Timestamp  string `json:"timestamp"`
}

type Page struct {
	UserID        string            `json:"user_id,omitempty"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
	CurrentPage   int               `json:"current_page"`
	AuditLogs     []models.AuditLog `json:"audit_logs"`
}

type UserStats struct {
	UserID       string           `json:"user_id"`
	TotalActions int64            `json:"total_actions"`
	ByStatus     map[string]int64 `json:"by_status"`
}

type ErrorStats struct {
	TotalErrors int64            `json:"total_errors"`
	ByService   map[string]int64 `json:"by_service"`
}

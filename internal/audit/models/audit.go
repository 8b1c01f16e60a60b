package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"gorm.io/gorm"
)

const (
	StatusSuccess = "SUCCESS"
	StatusFailure = "FAILURE"
	StatusError   = "ERROR"
)

// ErrorStatuses are the statuses reported by the error views.
var ErrorStatuses = []string{StatusFailure, StatusError}

var (
	ErrServiceNameRequired = fmt.Errorf("service name is required for external events: %w", httperr.ErrValidation)
	ErrNotOwnHistory       = fmt.Errorf("clients can only read their own history: %w", httperr.ErrForbidden)
	ErrInvalidStatus       = fmt.Errorf("status must be SUCCESS, FAILURE or ERROR: %w", httperr.ErrValidation)
)

func ValidStatus(s string) bool {
	return s == StatusSuccess || s == StatusFailure || s == StatusError
}

type AuditLog struct {
	ID            string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID        string    `gorm:"index;size:64" json:"user_id"`
	ActionType    string    `gorm:"index;size:64;not null" json:"action_type"`
	ServiceName   string    `gorm:"index;size:64" json:"service_name"`
	Description   string    `gorm:"type:text" json:"description"`
	Details       string    `gorm:"type:text" json:"details,omitempty"`
	Status        string    `gorm:"index;size:16;not null" json:"status"`
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	IPAddress     string    `gorm:"size:64" json:"ip_address,omitempty"`
	UserAgent     string    `gorm:"size:255" json:"user_agent,omitempty"`
	CorrelationID string    `gorm:"index;size:64" json:"correlation_id,omitempty"`
	Timestamp     time.Time `gorm:"index;not null" json:"timestamp"`
}

func (a *AuditLog) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}
	return nil
}

// Filter narrows a history query. Empty fields match everything.
type Filter struct {
	UserID      string
	ActionType  string
	ServiceName string
	Status      string
	Statuses    []string
	From        *time.Time
	To          *time.Time
	Page        int
	Size        int
}

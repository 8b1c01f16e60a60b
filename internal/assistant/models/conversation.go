package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/httperr"
	"gorm.io/gorm"
)

const (
	SourceIntent   = "INTENT"
	SourceLLM      = "LLM"
	SourceFallback = "FALLBACK"
)

var ErrEmptyMessage = fmt.Errorf("message is required: %w", httperr.ErrValidation)

type ConversationLog struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID      string    `gorm:"index;size:64;not null" json:"user_id"`
	UserMessage string    `gorm:"type:text;not null" json:"user_message"`
	AIResponse  string    `gorm:"type:text" json:"ai_response"`
	Source      string    `gorm:"size:16;not null" json:"source"`
	Intent      string    `gorm:"size:32" json:"intent,omitempty"`
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`
}

func (l *ConversationLog) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OutboxStatus string

const (
	OutboxPending   OutboxStatus = "PENDING"
	OutboxPublished OutboxStatus = "PUBLISHED"
	OutboxFailed    OutboxStatus = "FAILED"
)

// OutboxEvent is a message written in the same transaction as the payment
// change it describes and relayed to Kafka afterwards.
type OutboxEvent struct {
	ID          string       `json:"id" gorm:"type:uuid;primaryKey"`
	AggregateID string       `json:"aggregate_id" gorm:"index"`
	Topic       string       `json:"topic" gorm:"not null"`
	Key         string       `json:"key"`
	Payload     []byte       `json:"payload" gorm:"type:jsonb;not null"`
	Status      OutboxStatus `json:"status" gorm:"size:16;index:idx_outbox_pending,priority:1;not null"`
	RetryCount  int          `json:"retry_count"`
	LastError   string       `json:"last_error,omitempty"`
	CreatedAt   time.Time    `json:"created_at" gorm:"index:idx_outbox_pending,priority:2"`
	PublishedAt *time.Time   `json:"published_at,omitempty"`
}

func (o *OutboxEvent) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	if o.Status == "" {
		o.Status = OutboxPending
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Channel string

const (
	ChannelEmail Channel = "EMAIL"
	ChannelSMS   Channel = "SMS"
	ChannelPush  Channel = "PUSH"
)

func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelSMS || c == ChannelPush
}

const (
	StatusSent   = "SENT"
	StatusFailed = "FAILED"
)

type Notification struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"index;size:64" json:"user_id"`
	Channel   Channel   `gorm:"size:8;not null" json:"channel"`
	To        string    `gorm:"column:recipient;size:255;not null" json:"to"`
	Subject   string    `gorm:"size:255" json:"subject,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:8;not null" json:"status"`
	Error     string    `gorm:"type:text" json:"error,omitempty"`
	Source    string    `gorm:"size:64" json:"source,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (n *Notification) BeforeCreate(_ *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

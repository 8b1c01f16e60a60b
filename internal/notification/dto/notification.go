package dto

import (
	"strings"

	"github.com/jeffleon2/ebanking/internal/notification/models"
)

type Send struct {
	UserID  string `json:"user_id"`
	Channel string `json:"channel"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Sanitize trims the fields and defaults the channel to EMAIL.
func (s *Send) Sanitize() {
	s.UserID = strings.TrimSpace(s.UserID)
	s.Channel = strings.ToUpper(strings.TrimSpace(s.Channel))
	if s.Channel == "" {
		s.Channel = string(models.ChannelEmail)
	}
	s.To = strings.TrimSpace(s.To)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
}

// Result is the delivery outcome. Status is OK or FAILED.
type Result struct {
	Status         string `json:"status"`
	Details        string `json:"details"`
	NotificationID string `json:"notification_id,omitempty"`
}

const (
	ResultOK     = "OK"
	ResultFailed = "FAILED"
)

func Failed(details string) *Result {
	return &Result{Status: ResultFailed, Details: details}
}

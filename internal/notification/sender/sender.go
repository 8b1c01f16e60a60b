package sender

import (
	"context"

	"github.com/jeffleon2/ebanking/internal/notification/models"
	"github.com/sirupsen/logrus"
)

// LogSender simulates delivery by writing the notification to the log.
type LogSender struct {
	log *logrus.Entry
}

func NewLogSender() *LogSender {
	return &LogSender{log: logrus.WithField("component", "notification-sender")}
}

func (s *LogSender) Send(_ context.Context, n *models.Notification) error {
	s.log.WithFields(logrus.Fields{
		"user_id": n.UserID,
		"channel": n.Channel,
		"to":      n.To,
		"subject": n.Subject,
	}).Info(n.Message)
	return nil
}

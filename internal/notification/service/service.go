package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/notification/dto"
	"github.com/jeffleon2/ebanking/internal/notification/models"
	"github.com/sirupsen/logrus"
)

const (
	ServiceName = "notification-service"

	historyLimit = 100
)

type NotificationRepo interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
}

type Sender interface {
	Send(ctx context.Context, n *models.Notification) error
}

type NotificationService struct {
	Repo   NotificationRepo
	Sender Sender
	Now    func() time.Time
}

func NewNotificationService(repo NotificationRepo, sender Sender) *NotificationService {
	return &NotificationService{
		Repo:   repo,
		Sender: sender,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

// Send delivers a notification requested over HTTP. Missing fields are
// reported as a FAILED result, not as an error. Clients always notify
// themselves; admins may target any user.
func (s *NotificationService) Send(ctx context.Context, caller identity.Principal, req *dto.Send) (*dto.Result, error) {
	req.Sanitize()
	switch {
	case req.To == "":
		return dto.Failed("Field 'to' is required"), nil
	case req.Message == "":
		return dto.Failed("Field 'message' is required"), nil
	case !models.Channel(req.Channel).Valid():
		return dto.Failed("Field 'channel' must be EMAIL, SMS or PUSH"), nil
	}

	userID := req.UserID
	if userID == "" || !caller.IsAdmin() {
		userID = caller.UserID
	}
	n := &models.Notification{
		UserID:  userID,
		Channel: models.Channel(req.Channel),
		To:      req.To,
		Subject: req.Subject,
		Message: req.Message,
		Source:  "api",
	}
	if err := s.deliver(ctx, n); err != nil {
		return nil, err
	}
	if n.Status == models.StatusFailed {
		return &dto.Result{Status: dto.ResultFailed, Details: n.Error, NotificationID: n.ID}, nil
	}
	return &dto.Result{Status: dto.ResultOK, Details: "Notification sent", NotificationID: n.ID}, nil
}

func (s *NotificationService) List(ctx context.Context, caller identity.Principal) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, caller.UserID, historyLimit)
}

// Consume turns a bus event into a notification for its owner. Topics it
// does not know are ignored.
func (s *NotificationService) Consume(ctx context.Context, topic string, value []byte) error {
	var (
		n   *models.Notification
		err error
	)
	switch topic {
	case events.TopicPaymentStatusChanged:
		n, err = fromPaymentStatus(value)
	case events.TopicCustomerKYCUpdated:
		n, err = fromKYC(value)
	case events.TopicRecurringExecuted:
		n, err = fromRecurring(value)
	default:
		logrus.WithField("topic", topic).Warn("notification: unknown topic")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error parsing %s event: %w", topic, err)
	}
	if n == nil {
		return nil
	}
	n.Source = topic
	return s.deliver(ctx, n)
}

// deliver sends n and stores it with the outcome. A delivery failure is
// recorded on the row; only a storage failure is returned.
func (s *NotificationService) deliver(ctx context.Context, n *models.Notification) error {
	n.CreatedAt = s.Now()
	n.Status = models.StatusSent
	if err := s.Sender.Send(ctx, n); err != nil {
		logrus.WithFields(logrus.Fields{"user_id": n.UserID, "channel": n.Channel}).Warnf("notification not delivered: %v", err)
		n.Status = models.StatusFailed
		n.Error = err.Error()
	}
	return s.Repo.Create(ctx, n)
}

func fromPaymentStatus(value []byte) (*models.Notification, error) {
	var evt events.PaymentStatusChangedEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return nil, err
	}
	if evt.UserID == "" {
		return nil, nil
	}
	msg := fmt.Sprintf("Payment %s of %s %s is now %s", evt.PaymentID, evt.Amount.StringFixed(2), evt.Currency, evt.To)
	if evt.Reason != "" {
		msg += ": " + evt.Reason
	}
	return &models.Notification{
		UserID:  evt.UserID,
		Channel: models.ChannelPush,
		To:      evt.UserID,
		Subject: "Payment " + evt.To,
		Message: msg,
	}, nil
}

func fromKYC(value []byte) (*models.Notification, error) {
	var evt events.KYCUpdatedEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return nil, err
	}
	n := &models.Notification{
		UserID:  evt.Username,
		Channel: models.ChannelPush,
		To:      evt.Username,
		Subject: "KYC status updated",
		Message: fmt.Sprintf("Your identity verification is now %s", evt.Status),
	}
	if evt.Email != "" {
		n.Channel = models.ChannelEmail
		n.To = evt.Email
	}
	return n, nil
}

func fromRecurring(value []byte) (*models.Notification, error) {
	var evt events.RecurringExecutedEvent
	if err := json.Unmarshal(value, &evt); err != nil {
		return nil, err
	}
	amount := evt.Amount.StringFixed(2) + " " + evt.Currency
	n := &models.Notification{
		UserID:  evt.UserID,
		Channel: models.ChannelPush,
		To:      evt.UserID,
		Subject: "Recurring payment " + evt.Provider,
	}
	if evt.Success {
		n.Message = fmt.Sprintf("Recurring payment of %s to %s succeeded. Next payment on %s", amount, evt.Provider, evt.NextRun.Format(time.DateOnly))
	} else {
		n.Message = fmt.Sprintf("Recurring payment of %s to %s failed: %s", amount, evt.Provider, evt.Error)
	}
	return n, nil
}

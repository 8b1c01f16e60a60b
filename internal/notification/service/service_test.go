package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/identity"
	"github.com/jeffleon2/ebanking/internal/notification/dto"
	"github.com/jeffleon2/ebanking/internal/notification/models"
	"github.com/jeffleon2/ebanking/internal/notification/service"
	"github.com/jeffleon2/ebanking/internal/notification/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	client = identity.Principal{UserID: "user-1", Roles: []string{identity.RoleClient}}
	admin  = identity.Principal{UserID: "root", Roles: []string{identity.RoleAdmin}}
	now    = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
)

func newService(t *testing.T) (*service.NotificationService, *mocks.MockNotificationRepo, *mocks.MockSender) {
	repo := mocks.NewMockNotificationRepo(t)
	sender := mocks.NewMockSender(t)
	svc := service.NewNotificationService(repo, sender)
	svc.Now = func() time.Time { return now }
	return svc, repo, sender
}

func TestSend_MissingFields(t *testing.T) {
	svc, _, _ := newService(t)

	cases := map[string]dto.Send{
		"Field 'to' is required":                     {Message: "hi"},
		"Field 'message' is required":                {To: "a@b.c", Message: "  "},
		"Field 'channel' must be EMAIL, SMS or PUSH": {To: "a@b.c", Message: "hi", Channel: "fax"},
	}
	for details, req := range cases {
		res, err := svc.Send(context.Background(), client, &req)
		require.NoError(t, err)
		assert.Equal(t, dto.ResultFailed, res.Status)
		assert.Equal(t, details, res.Details)
	}
}

func TestSend_ClientNotifiesThemselves(t *testing.T) {
	svc, repo, sender := newService(t)
	ctx := context.Background()

	sender.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.UserID == "user-1" && n.Channel == models.ChannelEmail && n.Status == models.StatusSent && n.CreatedAt.Equal(now)
		})).
		Return(nil).
		Once()

	res, err := svc.Send(ctx, client, &dto.Send{UserID: "someone-else", To: "a@b.c", Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, dto.ResultOK, res.Status)
}

func TestSend_AdminTargetsUser(t *testing.T) {
	svc, repo, sender := newService(t)
	ctx := context.Background()

	sender.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *models.Notification) bool { return n.UserID == "user-7" && n.Channel == models.ChannelSMS })).
		Return(nil).
		Once()

	res, err := svc.Send(ctx, admin, &dto.Send{UserID: "user-7", Channel: "sms", To: "+212600000000", Message: "code 1234"})

	require.NoError(t, err)
	assert.Equal(t, dto.ResultOK, res.Status)
}

func TestSend_DeliveryFailureIsStored(t *testing.T) {
	svc, repo, sender := newService(t)
	ctx := context.Background()

	sender.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp down")).Once()
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *models.Notification) bool { return n.Status == models.StatusFailed && n.Error == "smtp down" })).
		Return(nil).
		Once()

	res, err := svc.Send(ctx, client, &dto.Send{To: "a@b.c", Message: "hello"})

	require.NoError(t, err)
	assert.Equal(t, dto.ResultFailed, res.Status)
	assert.Equal(t, "smtp down", res.Details)
}

func TestConsume_PaymentStatus(t *testing.T) {
	svc, repo, sender := newService(t)
	ctx := context.Background()

	sender.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.UserID == "user-1" && n.Channel == models.ChannelPush &&
				n.Message == "Payment pay-1 of 25.50 EUR is now COMPLETED" &&
				n.Source == events.TopicPaymentStatusChanged
		})).
		Return(nil).
		Once()

	err := svc.Consume(ctx, events.TopicPaymentStatusChanged,
		[]byte(`{"payment_id":"pay-1","user_id":"user-1","from":"VALIDATED","to":"COMPLETED","amount":"25.5","currency":"EUR"}`))

	assert.NoError(t, err)
}

func TestConsume_KYCGoesByEmail(t *testing.T) {
	svc, repo, sender := newService(t)
	ctx := context.Background()

	sender.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.UserID == "alice" && n.Channel == models.ChannelEmail && n.To == "alice@bank.ma"
		})).
		Return(nil).
		Once()

	err := svc.Consume(ctx, events.TopicCustomerKYCUpdated, []byte(`{"customer_id":"c-1","username":"alice","email":"alice@bank.ma","status":"VERIFIED"}`))

	assert.NoError(t, err)
}

func TestConsume_RecurringFailure(t *testing.T) {
	svc, repo, sender := newService(t)
	ctx := context.Background()

	sender.EXPECT().Send(ctx, mock.Anything).Return(nil).Once()
	repo.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Message == "Recurring payment of 99.00 MAD to INWI failed: card blocked"
		})).
		Return(nil).
		Once()

	err := svc.Consume(ctx, events.TopicRecurringExecuted,
		[]byte(`{"recurring_id":"r-1","user_id":"user-1","provider":"INWI","amount":"99","currency":"MAD","success":false,"error":"card blocked"}`))

	assert.NoError(t, err)
}

func TestConsume_BadPayloadIsRetried(t *testing.T) {
	svc, _, _ := newService(t)

	err := svc.Consume(context.Background(), events.TopicRecurringExecuted, []byte(`{"user_id":`))

	assert.Error(t, err)
}

func TestConsume_UnknownTopic(t *testing.T) {
	svc, _, _ := newService(t)

	assert.NoError(t, svc.Consume(context.Background(), "something.else", []byte(`{}`)))
}

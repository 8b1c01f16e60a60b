package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/jeffleon2/ebanking/internal/payment/service"
	"github.com/jeffleon2/ebanking/internal/payment/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboxRelay_PublishesInOrder(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	pub := mocks.NewMockPublisher(t)
	relay := service.NewOutboxRelay(repo, pub, 0, 0)
	ctx := context.Background()

	rows := []models.OutboxEvent{
		{ID: "o-1", Topic: events.TopicAuditEvents, Key: "corr-1", Payload: []byte(`{"action_type":"PAYMENT_CREATED"}`)},
		{ID: "o-2", Topic: events.TopicPaymentStatusChanged, Payload: []byte(`{"to":"VALIDATED"}`)},
	}
	repo.EXPECT().Pending(ctx, 100).Return(rows, nil).Once()
	pub.EXPECT().PublishWithKey(ctx, events.TopicAuditEvents, "corr-1", json.RawMessage(rows[0].Payload)).Return(nil).Once()
	pub.EXPECT().PublishWithKey(ctx, events.TopicPaymentStatusChanged, "o-2", json.RawMessage(rows[1].Payload)).Return(nil).Once()
	repo.EXPECT().MarkPublished(ctx, "o-1").Return(nil).Once()
	repo.EXPECT().MarkPublished(ctx, "o-2").Return(nil).Once()

	n, err := relay.Relay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOutboxRelay_RecordsFailures(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	pub := mocks.NewMockPublisher(t)
	relay := service.NewOutboxRelay(repo, pub, 10, 3)
	ctx := context.Background()

	rows := []models.OutboxEvent{{ID: "o-1", Topic: events.TopicAuditEvents, Key: "corr-1", Payload: []byte(`{}`), RetryCount: 2}}
	repo.EXPECT().Pending(ctx, 10).Return(rows, nil).Once()
	pub.EXPECT().PublishWithKey(ctx, events.TopicAuditEvents, "corr-1", json.RawMessage(`{}`)).Return(errors.New("broker down")).Once()
	repo.EXPECT().MarkFailed(ctx, "o-1", "broker down", 3).Return(nil).Once()

	n, err := relay.Relay(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOutboxRelay_PendingError(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	relay := service.NewOutboxRelay(repo, mocks.NewMockPublisher(t), 5, 3)

	repo.EXPECT().Pending(context.Background(), 5).Return(nil, errors.New("db down")).Once()

	_, err := relay.Relay(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestOutboxRelay_RetriesDebitRequestAfterBrokerFailure(t *testing.T) {
	repo := mocks.NewMockOutboxRepo(t)
	pub := mocks.NewMockPublisher(t)
	relay := service.NewOutboxRelay(repo, pub, 10, 3)
	ctx := context.Background()

	row := models.OutboxEvent{ID: "o-1", Topic: events.TopicAccountDebitRequested, Key: "pay-1", Payload: []byte(`{"payment_id":"pay-1"}`)}
	repo.EXPECT().Pending(ctx, 10).Return([]models.OutboxEvent{row}, nil).Twice()
	pub.EXPECT().PublishWithKey(ctx, events.TopicAccountDebitRequested, "pay-1", json.RawMessage(row.Payload)).Return(errors.New("broker down")).Once()
	repo.EXPECT().MarkFailed(ctx, "o-1", "broker down", 3).Return(nil).Once()
	pub.EXPECT().PublishWithKey(ctx, events.TopicAccountDebitRequested, "pay-1", json.RawMessage(row.Payload)).Return(nil).Once()
	repo.EXPECT().MarkPublished(ctx, "o-1").Return(nil).Once()

	n, err := relay.Relay(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = relay.Relay(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

package service

import (
	"context"
	"encoding/json"

	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/sirupsen/logrus"
)

type OutboxRepo interface {
	Pending(ctx context.Context, limit int) ([]models.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string, maxRetries int) error
}

// OutboxRelay publishes outbox rows to Kafka in creation order.
type OutboxRelay struct {
	Repo       OutboxRepo
	Publisher  Publisher
	BatchSize  int
	MaxRetries int
}

func NewOutboxRelay(repo OutboxRepo, publisher Publisher, batchSize, maxRetries int) *OutboxRelay {
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &OutboxRelay{Repo: repo, Publisher: publisher, BatchSize: batchSize, MaxRetries: maxRetries}
}

// Relay publishes one batch and returns how many rows were published.
func (r *OutboxRelay) Relay(ctx context.Context) (int, error) {
	rows, err := r.Repo.Pending(ctx, r.BatchSize)
	if err != nil {
		return 0, err
	}

	published := 0
	for _, row := range rows {
		if ctx.Err() != nil {
			break
		}
		key := row.Key
		if key == "" {
			key = row.ID
		}
		if err := r.Publisher.PublishWithKey(ctx, row.Topic, key, json.RawMessage(row.Payload)); err != nil {
			logrus.WithFields(logrus.Fields{"outbox_id": row.ID, "topic": row.Topic, "retry": row.RetryCount + 1}).
				Warnf("outbox publish failed: %v", err)
			if merr := r.Repo.MarkFailed(ctx, row.ID, err.Error(), r.MaxRetries); merr != nil {
				logrus.WithField("outbox_id", row.ID).Errorf("marking outbox row failed: %v", merr)
			}
			continue
		}
		if err := r.Repo.MarkPublished(ctx, row.ID); err != nil {
			logrus.WithField("outbox_id", row.ID).Errorf("marking outbox row published: %v", err)
			continue
		}
		published++
	}

	if published > 0 {
		logrus.WithField("count", published).Debug("outbox rows relayed")
	}
	return published, nil
}

// Run is the scheduler entry point.
func (r *OutboxRelay) Run(ctx context.Context) {
	if _, err := r.Relay(ctx); err != nil {
		logrus.Errorf("outbox relay: %v", err)
	}
}

package subscriber

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// HandlerFunc processes one message. A non-nil error triggers a retry.
type HandlerFunc func(ctx context.Context, topic string, key, value []byte) error

// MessageReader is the subset of *kafka.Reader used by the consumer.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type DLQPublisher interface {
	PublishWithKey(ctx context.Context, topic, key string, message interface{}) error
}

type KafkaConsumer struct {
	Readers      []MessageReader
	DLQPublisher DLQPublisher
	DLQTopic     string
	RetryConfig  config.RetryConfig

	wg sync.WaitGroup
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	dlqTopic string,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]MessageReader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		DLQTopic:     dlqTopic,
		RetryConfig:  retryConfig.WithDefaults(),
	}
}

// Listen starts one goroutine per reader. They stop when ctx is cancelled.
func (c *KafkaConsumer) Listen(ctx context.Context, handler HandlerFunc) {
	for _, reader := range c.Readers {
		c.wg.Add(1)
		go func(r MessageReader) {
			defer c.wg.Done()
			failures := 0
			for {
				msg, err := r.FetchMessage(ctx)
				if err != nil {
					if ctx.Err() != nil || errors.Is(err, context.Canceled) {
						return
					}
					failures++
					logrus.Errorf("Kafka error: %v", err)
					if !sleep(ctx, c.RetryConfig.Backoff(failures)) {
						return
					}
					continue
				}
				failures = 0

				c.processMessage(ctx, msg, handler)

				if err := r.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
					logrus.WithField("topic", msg.Topic).Errorf("commit failed: %v", err)
				}
			}
		}(reader)
	}
}

func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message, handler HandlerFunc) {
	log := logrus.WithFields(logrus.Fields{"topic": msg.Topic, "key": string(msg.Key), "offset": msg.Offset})

	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		err := handler(ctx, msg.Topic, msg.Key, msg.Value)
		if err == nil {
			return
		}

		backoff := c.RetryConfig.Backoff(attempt)
		log.Warnf("Handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		if !sleep(ctx, backoff) {
			return
		}
	}

	log.Errorf("Message failed after %d retries", c.RetryConfig.MaxAttempts)
	if c.DLQPublisher == nil || c.DLQTopic == "" {
		return
	}

	dlqMessage := events.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Timestamp:     time.Now().UTC(),
		Attempts:      c.RetryConfig.MaxAttempts,
	}
	if err := c.DLQPublisher.PublishWithKey(ctx, c.DLQTopic, string(msg.Key), dlqMessage); err != nil {
		log.Errorf("Failed to send message to DLQ: %v", err)
		return
	}
	log.Info("Message sent to DLQ")
}

// Close waits for the listeners to return and closes every reader.
func (c *KafkaConsumer) Close() error {
	c.wg.Wait()
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

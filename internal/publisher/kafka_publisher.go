package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/ebanking/config"
	kafka "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageWriter is the subset of *kafka.Writer used by the publisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	Writers     map[string]MessageWriter
	RetryConfig config.RetryConfig
}

func NewKafkaPublisher(brokers []string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]MessageWriter, len(topics))
	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  t,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
	}

	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: retryConfig.WithDefaults(),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	return p.PublishWithKey(ctx, topic, "", message)
}

// PublishWithKey marshals message as JSON and writes it with the given key.
// An empty key leaves partitioning to the balancer.
func (p *KafkaPublisher) PublishWithKey(ctx context.Context, topic, key string, message interface{}) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	msg := kafka.Message{Value: data}
	if key != "" {
		msg.Key = []byte(key)
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer MessageWriter, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				logrus.WithField("topic", topic).Infof("message published after %d attempts", attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := p.RetryConfig.Backoff(attempt)
		logrus.WithFields(logrus.Fields{
			"topic":   topic,
			"attempt": attempt + 1,
			"delay":   delay,
		}).Warnf("publish failed, retrying: %v", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

func (p *KafkaPublisher) Close() error {
	var errs []error
	for _, w := range p.Writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

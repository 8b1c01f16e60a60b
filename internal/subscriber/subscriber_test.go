package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) commits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

type fakeDLQ struct {
	mu    sync.Mutex
	topic string
	key   string
	msg   events.DLQMessage
	sent  int
}

func (d *fakeDLQ) PublishWithKey(_ context.Context, topic, key string, message interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.topic = topic
	d.key = key
	d.msg = message.(events.DLQMessage)
	d.sent++
	return nil
}

func retry() config.RetryConfig {
	return config.RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestProcessMessage_SucceedsWithoutDLQ(t *testing.T) {
	dlq := &fakeDLQ{}
	c := &KafkaConsumer{DLQPublisher: dlq, DLQTopic: "payment-service.dlq", RetryConfig: retry()}
	calls := 0

	c.processMessage(context.Background(), kafka.Message{Topic: "payments.checked"}, func(context.Context, string, []byte, []byte) error {
		calls++
		if calls < 2 {
			return errors.New("transient")
		}
		return nil
	})

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, dlq.sent)
}

func TestProcessMessage_DeadLettersAfterRetries(t *testing.T) {
	dlq := &fakeDLQ{}
	c := &KafkaConsumer{DLQPublisher: dlq, DLQTopic: "payment-service.dlq", RetryConfig: retry()}
	msg := kafka.Message{Topic: "payments.checked", Key: []byte("k-1"), Value: []byte(`{"id":"p-1"}`)}

	c.processMessage(context.Background(), msg, func(context.Context, string, []byte, []byte) error {
		return errors.New("permanent")
	})

	require.Equal(t, 1, dlq.sent)
	assert.Equal(t, "payment-service.dlq", dlq.topic)
	assert.Equal(t, "k-1", dlq.key)
	assert.Equal(t, "payments.checked", dlq.msg.OriginalTopic)
	assert.Equal(t, `{"id":"p-1"}`, dlq.msg.Value)
	assert.Equal(t, 3, dlq.msg.Attempts)
	_, err := json.Marshal(dlq.msg)
	assert.NoError(t, err)
}

func TestListen_DeliversCommitsAndStopsOnCancel(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{
		{Topic: "audit.events", Key: []byte("c-1"), Value: []byte("a")},
		{Topic: "audit.events", Key: []byte("c-2"), Value: []byte("b")},
	}}
	c := &KafkaConsumer{Readers: []MessageReader{reader}, RetryConfig: retry()}
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	var keys []string
	c.Listen(ctx, func(_ context.Context, _ string, key, _ []byte) error {
		mu.Lock()
		defer mu.Unlock()
		keys = append(keys, string(key))
		return nil
	})

	assert.Eventually(t, func() bool { return reader.commits() == 2 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, c.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"c-1", "c-2"}, keys)
}

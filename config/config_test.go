package config_test

import (
	"testing"
	"time"

	"github.com/jeffleon2/ebanking/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsFromServiceName(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")

	cfg, err := config.New("payment-service")

	require.NoError(t, err)
	assert.Equal(t, "payment-service", cfg.APP.Name)
	assert.Equal(t, "payment-service", cfg.Kafka.ConsumerGroup)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.BrokerList())
	assert.Equal(t, "@every 5s", cfg.Scheduler.OutboxSpec)
}

func TestRetryConfig_WithDefaults(t *testing.T) {
	rc := config.RetryConfig{}.WithDefaults()

	assert.Equal(t, 5, rc.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, rc.BaseDelay)
	assert.Equal(t, 10*time.Second, rc.MaxDelay)
}

func TestRetryConfig_Backoff(t *testing.T) {
	rc := config.RetryConfig{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	assert.Equal(t, 100*time.Millisecond, rc.Backoff(0))
	assert.Equal(t, 400*time.Millisecond, rc.Backoff(2))
	assert.Equal(t, time.Second, rc.Backoff(10))
}

func TestRetryConfig_BackoffJitterStaysInRange(t *testing.T) {
	rc := config.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Jitter: true}

	for i := 0; i < 50; i++ {
		d := rc.Backoff(1)
		assert.GreaterOrEqual(t, d, 170*time.Millisecond)
		assert.LessOrEqual(t, d, 230*time.Millisecond)
	}
}

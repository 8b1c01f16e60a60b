package config

import (
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// New loads the configuration for the named service. The name is used as the
// default consumer group and as the service name reported in audit events.
func New(service string) (*Config, error) {
	var cfg Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Warn("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if cfg.APP.Name == "" {
		cfg.APP.Name = service
	}
	if cfg.Kafka.ConsumerGroup == "" {
		cfg.Kafka.ConsumerGroup = service
	}
	return &cfg, nil
}

type Config struct {
	APP
	DB
	Kafka
	Redis
	Auth
	Services
	Exchange
	Crypto
	Assistant
	Scheduler
	Fraud
	Card
	Payment
}

type APP struct {
	Name      string `env:"APP_NAME"`
	PORT      string `env:"APP_PORT" envDefault:"8080"`
	Env       string `env:"GO_ENV" envDefault:"production"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

func (a APP) IsLocal() bool {
	return a.Env == "local"
}

type DB struct {
	HOST     string `env:"DB_HOST" envDefault:"localhost"`
	USER     string `env:"DB_USER" envDefault:"postgres"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME" envDefault:"ebanking"`
	PORT     string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup string `env:"KAFKA_GROUP_ID"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return brokers
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Auth struct {
	JWTSecret    string `env:"JWT_SECRET"`
	JWTPublicKey string `env:"JWT_PUBLIC_KEY"`
	JWTIssuer    string `env:"JWT_ISSUER"`
	Disabled     bool   `env:"AUTH_DISABLED" envDefault:"false"`
}

type Services struct {
	AccountURL   string        `env:"ACCOUNT_SERVICE_URL" envDefault:"http://localhost:8081"`
	CardURL      string        `env:"CARD_SERVICE_URL" envDefault:"http://localhost:8088"`
	PortfolioURL string        `env:"PORTFOLIO_SERVICE_URL" envDefault:"http://localhost:8089"`
	Timeout      time.Duration `env:"SERVICE_CLIENT_TIMEOUT" envDefault:"5s"`
}

type Exchange struct {
	URL      string        `env:"EXCHANGE_API_URL" envDefault:"https://v6.exchangerate-api.com/v6"`
	APIKey   string        `env:"EXCHANGE_API_KEY"`
	CacheTTL time.Duration `env:"EXCHANGE_CACHE_TTL" envDefault:"10m"`
}

type Crypto struct {
	PriceURL      string `env:"CRYPTO_PRICE_URL" envDefault:"https://api.coingecko.com/api/v3/simple/price"`
	RefreshSpec   string `env:"CRYPTO_REFRESH_SPEC" envDefault:"@every 12s"`
	QuoteCurrency string `env:"CRYPTO_QUOTE_CURRENCY" envDefault:"EUR"`
}

type Assistant struct {
	LLMURL    string        `env:"LLM_API_URL" envDefault:"https://api.groq.com/openai/v1/chat/completions"`
	LLMAPIKey string        `env:"LLM_API_KEY"`
	LLMModel  string        `env:"LLM_MODEL" envDefault:"llama-3.3-70b-versatile"`
	Timeout   time.Duration `env:"LLM_TIMEOUT" envDefault:"20s"`
}

type Scheduler struct {
	RecurringSpec string `env:"RECURRING_SCHEDULE" envDefault:"@hourly"`
	OutboxSpec    string `env:"OUTBOX_SCHEDULE" envDefault:"@every 5s"`
	OutboxBatch   int    `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
	OutboxRetries int    `env:"OUTBOX_MAX_RETRIES" envDefault:"3"`
}

type Fraud struct {
	DefaultDailyLimit float64       `env:"FRAUD_DEFAULT_DAILY_LIMIT" envDefault:"15000"`
	VelocityWindow    time.Duration `env:"FRAUD_VELOCITY_WINDOW" envDefault:"10m"`
}

type Payment struct {
	LegacyURL         string  `env:"LEGACY_ADAPTER_URL"`
	LegacyMock        bool    `env:"LEGACY_MOCK_ENABLED" envDefault:"true"`
	LegacyFailureRate float64 `env:"LEGACY_MOCK_FAILURE_RATE" envDefault:"0.05"`
}

type Card struct {
	EncryptionKey string `env:"CARD_ENCRYPTION_KEY"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}.WithDefaults()
}

// WithDefaults fills zero fields with 5 attempts, 100ms base and 10s cap.
func (r RetryConfig) WithDefaults() RetryConfig {
	if r.MaxAttempts <= 0 {
		r.MaxAttempts = 5
	}
	if r.BaseDelay <= 0 {
		r.BaseDelay = 100 * time.Millisecond
	}
	if r.MaxDelay <= 0 {
		r.MaxDelay = 10 * time.Second
	}
	return r
}

// Backoff returns 2^attempt * BaseDelay capped at MaxDelay, spread by ±15% when Jitter is set.
func (r RetryConfig) Backoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * r.BaseDelay

	if delay > r.MaxDelay || delay <= 0 {
		delay = r.MaxDelay
	}

	if r.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

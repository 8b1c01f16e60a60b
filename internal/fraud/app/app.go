package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/fraud/handler"
	"github.com/jeffleon2/ebanking/internal/fraud/models"
	"github.com/jeffleon2/ebanking/internal/fraud/repository"
	"github.com/jeffleon2/ebanking/internal/fraud/service"
	"github.com/jeffleon2/ebanking/internal/fraud/strategy"
	"github.com/jeffleon2/ebanking/internal/fraud/velocity"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/jeffleon2/ebanking/internal/subscriber"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.FraudHandler
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	redis     *redis.Client
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Check{}, &models.BlacklistedIBAN{}, &models.AccountLimit{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}
	repo := repository.New(db)

	var window velocity.Window
	if cfg.Redis.Addr != "" {
		a.redis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		window = velocity.NewRedisWindow(a.redis, cfg.Fraud.VelocityWindow)
	} else {
		logrus.Warn("REDIS_ADDR not set, velocity window kept in memory")
		window = velocity.NewMemoryWindow(cfg.Fraud.VelocityWindow)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicPaymentsChecked,
		events.TopicAuditEvents,
		events.DLQTopic(service.ServiceName),
	}, cfg.Kafka.GetRetryConfig())

	fraudService := service.NewFraudService(repo, a.publisher,
		strategy.Amount{},
		strategy.Blacklist{Store: repo},
		strategy.Velocity{Window: window},
		strategy.Limits{Store: repo, DefaultDaily: decimal.NewFromFloat(cfg.Fraud.DefaultDailyLimit)},
		strategy.NewBeneficiary{Store: repo},
	)
	a.handler = handler.Fraud(fraudService)

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(a.handler, auth)

	a.consumer = subscriber.NewMultiTopicConsumer(
		cfg.Kafka.BrokerList(),
		[]string{events.TopicPaymentsCreated, events.TopicPaymentStatusChanged},
		cfg.Kafka.ConsumerGroup,
		a.publisher,
		events.DLQTopic(service.ServiceName),
		cfg.Kafka.GetRetryConfig(),
	)
}

func (a *App) Run(ctx context.Context) error {
	a.consumer.Listen(ctx, func(ctx context.Context, topic string, _, value []byte) error {
		logrus.WithField("topic", topic).Debugf("received event %s", string(value))
		return a.handler.Handler(ctx, topic, value)
	})

	err := server.Run(ctx, a.config, a.Router)

	if cerr := a.consumer.Close(); cerr != nil {
		logrus.Errorf("Error closing consumer: %v", cerr)
	}
	if perr := a.publisher.Close(); perr != nil {
		logrus.Errorf("Error closing publisher: %v", perr)
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	logrus.Info("Fraud service stopped")
	return err
}

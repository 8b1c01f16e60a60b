package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/analytics/handler"
	"github.com/jeffleon2/ebanking/internal/analytics/metrics"
	"github.com/jeffleon2/ebanking/internal/analytics/models"
	"github.com/jeffleon2/ebanking/internal/analytics/repository"
	"github.com/jeffleon2/ebanking/internal/analytics/service"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/jeffleon2/ebanking/internal/subscriber"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.AnalyticsHandler
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Expense{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.handler = handler.NewAnalyticsHandler(
		service.NewAnalyticsService(repository.New(db), metrics.New(prometheus.DefaultRegisterer)),
	)

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(a.handler, auth)

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.DLQTopic(service.ServiceName),
	}, cfg.Kafka.GetRetryConfig())
	a.consumer = subscriber.NewMultiTopicConsumer(
		cfg.Kafka.BrokerList(),
		[]string{
			events.TopicPaymentsCreated,
			events.TopicPaymentsChecked,
			events.TopicPaymentStatusChanged,
			events.TopicAccountFundsVerified,
			events.TopicWalletExpenseCreated,
		},
		cfg.Kafka.ConsumerGroup,
		a.publisher,
		events.DLQTopic(service.ServiceName),
		cfg.Kafka.GetRetryConfig(),
	)
}

func (a *App) Run(ctx context.Context) error {
	a.consumer.Listen(ctx, func(ctx context.Context, topic string, _, value []byte) error {
		return a.handler.HandleEvents(ctx, topic, value)
	})

	err := server.Run(ctx, a.config, a.Router)

	if cerr := a.consumer.Close(); cerr != nil {
		logrus.Errorf("closing consumer: %v", cerr)
	}
	if perr := a.publisher.Close(); perr != nil {
		logrus.Errorf("closing publisher: %v", perr)
	}
	return err
}

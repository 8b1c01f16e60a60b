package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/audit/handler"
	"github.com/jeffleon2/ebanking/internal/audit/models"
	"github.com/jeffleon2/ebanking/internal/audit/repository"
	"github.com/jeffleon2/ebanking/internal/audit/service"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/jeffleon2/ebanking/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.AuditHandler
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.handler = handler.NewAuditHandler(service.NewAuditService(repository.New(db)))

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(a.handler, auth)

	// The publisher only carries dead letters.
	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.DLQTopic(service.ServiceName),
	}, cfg.Kafka.GetRetryConfig())
	a.consumer = subscriber.NewMultiTopicConsumer(
		cfg.Kafka.BrokerList(),
		[]string{events.TopicAuditEvents},
		cfg.Kafka.ConsumerGroup,
		a.publisher,
		events.DLQTopic(service.ServiceName),
		cfg.Kafka.GetRetryConfig(),
	)
}

func (a *App) Run(ctx context.Context) error {
	a.consumer.Listen(ctx, func(ctx context.Context, _ string, key, value []byte) error {
		return a.handler.HandleEvents(ctx, key, value)
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

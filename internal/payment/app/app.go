package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/payment/handler"
	"github.com/jeffleon2/ebanking/internal/payment/models"
	"github.com/jeffleon2/ebanking/internal/payment/repository"
	"github.com/jeffleon2/ebanking/internal/payment/service"
	"github.com/jeffleon2/ebanking/internal/payment/settlement"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/scheduler"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/jeffleon2/ebanking/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.PaymentHandler
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
	scheduler *scheduler.Scheduler
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Payment{}, &models.OutboxEvent{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicPaymentsCreated,
		events.TopicAccountDebitRequested,
		events.TopicAccountCreditRequest,
		events.TopicPaymentStatusChanged,
		events.TopicAuditEvents,
		events.DLQTopic(service.ServiceName),
	}, cfg.Kafka.GetRetryConfig())

	var settler service.Settler
	if cfg.Payment.LegacyMock || cfg.Payment.LegacyURL == "" {
		logrus.Warn("legacy adapter simulated")
		settler = settlement.NewSimulator(cfg.Payment.LegacyFailureRate)
	} else {
		settler = client.NewLegacyClient(cfg.Payment.LegacyURL, cfg.Services.Timeout)
	}

	paymentService := service.NewPaymentService(repository.New(db), settler)
	a.handler = handler.NewPaymentHandler(paymentService)

	relay := service.NewOutboxRelay(repository.NewOutbox(db), a.publisher, cfg.Scheduler.OutboxBatch, cfg.Scheduler.OutboxRetries)
	a.scheduler = scheduler.New()
	if err := a.scheduler.Add("outbox-relay", cfg.Scheduler.OutboxSpec, relay.Run); err != nil {
		logrus.Fatalf("failed to schedule outbox relay: %v", err)
	}

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}

	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(a.handler, auth)

	a.consumer = subscriber.NewMultiTopicConsumer(
		cfg.Kafka.BrokerList(),
		[]string{events.TopicPaymentsChecked, events.TopicAccountFundsVerified, events.TopicAccountDebitCompleted},
		cfg.Kafka.ConsumerGroup,
		a.publisher,
		events.DLQTopic(service.ServiceName),
		cfg.Kafka.GetRetryConfig(),
	)
}

// Run serves HTTP, consumes saga results and relays the outbox until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.consumer.Listen(ctx, func(ctx context.Context, topic string, _, value []byte) error {
		logrus.WithField("topic", topic).Debugf("received message %s", string(value))
		return a.handler.HandleEvents(ctx, topic, value)
	})
	a.scheduler.Start()

	err := server.Run(ctx, a.config, a.Router)

	<-a.scheduler.Stop().Done()
	if cerr := a.consumer.Close(); cerr != nil {
		logrus.Errorf("closing consumer: %v", cerr)
	}
	if perr := a.publisher.Close(); perr != nil {
		logrus.Errorf("closing publisher: %v", perr)
	}
	return err
}

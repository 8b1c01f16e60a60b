package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/account/database"
	"github.com/jeffleon2/ebanking/internal/account/handler"
	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/jeffleon2/ebanking/internal/account/repository"
	"github.com/jeffleon2/ebanking/internal/account/service"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/exchange"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/jeffleon2/ebanking/internal/subscriber"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.AccountHandler
	publisher *publisher.KafkaPublisher
	consumer  *subscriber.KafkaConsumer
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Account{}, &models.LedgerEntry{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	repo := repository.New(db)
	if err := repo.EnsureSystemAccounts(context.Background(), validation.Currencies); err != nil {
		logrus.Fatalf("failed to create system accounts: %v", err)
	}
	if cfg.APP.IsLocal() {
		if err := database.SeedAccounts(db); err != nil {
			logrus.Errorf("failed to seed demo accounts: %v", err)
		}
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicAccountFundsVerified,
		events.TopicAccountDebitCompleted,
		events.TopicAuditEvents,
		events.DLQTopic(service.ServiceName),
	}, cfg.Kafka.GetRetryConfig())

	converter := exchange.NewConverter(cfg.Exchange.URL, cfg.Exchange.APIKey, cfg.Exchange.CacheTTL, &http.Client{Timeout: cfg.Services.Timeout})
	accountService := service.NewAccountService(repo, a.publisher, converter)
	a.handler = handler.NewAccountHandler(accountService)

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}

	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(a.handler, auth)

	a.consumer = subscriber.NewMultiTopicConsumer(
		cfg.Kafka.BrokerList(),
		[]string{events.TopicPaymentsCreated, events.TopicAccountDebitRequested, events.TopicAccountCreditRequest},
		cfg.Kafka.ConsumerGroup,
		a.publisher,
		events.DLQTopic(service.ServiceName),
		cfg.Kafka.GetRetryConfig(),
	)
}

// Run serves HTTP and consumes saga topics until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.consumer.Listen(ctx, func(ctx context.Context, topic string, _, value []byte) error {
		logrus.WithField("topic", topic).Debugf("received message %s", string(value))
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

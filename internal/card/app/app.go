package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/card/handler"
	"github.com/jeffleon2/ebanking/internal/card/models"
	"github.com/jeffleon2/ebanking/internal/card/repository"
	"github.com/jeffleon2/ebanking/internal/card/service"
	"github.com/jeffleon2/ebanking/internal/card/vault"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/exchange"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.CardHandler
	publisher *publisher.KafkaPublisher
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.VirtualCard{}, &models.CardTransaction{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	v, err := vault.New(cfg.Card.EncryptionKey)
	if err != nil {
		logrus.Fatalf("failed to configure card vault: %v", err)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicAuditEvents,
	}, cfg.Kafka.GetRetryConfig())

	converter := exchange.NewConverter(cfg.Exchange.URL, cfg.Exchange.APIKey, cfg.Exchange.CacheTTL, &http.Client{Timeout: cfg.Services.Timeout})
	a.handler = handler.NewCardHandler(service.NewCardService(repository.New(db), v, converter, a.publisher))

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(a.handler, auth)
}

func (a *App) Run(ctx context.Context) error {
	err := server.Run(ctx, a.config, a.Router)
	if perr := a.publisher.Close(); perr != nil {
		logrus.Errorf("closing publisher: %v", perr)
	}
	return err
}

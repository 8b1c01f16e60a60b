package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/crypto/handler"
	"github.com/jeffleon2/ebanking/internal/crypto/models"
	"github.com/jeffleon2/ebanking/internal/crypto/prices"
	"github.com/jeffleon2/ebanking/internal/crypto/repository"
	"github.com/jeffleon2/ebanking/internal/crypto/service"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/exchange"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/scheduler"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.CryptoHandler
	publisher *publisher.KafkaPublisher
	scheduler *scheduler.Scheduler
	feed      *prices.Feed
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.CryptoWallet{}, &models.CryptoTransaction{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicAuditEvents,
	}, cfg.Kafka.GetRetryConfig())

	httpClient := &http.Client{Timeout: cfg.Services.Timeout}
	a.feed = prices.NewFeed(cfg.Crypto.PriceURL, cfg.Crypto.QuoteCurrency, models.Symbols, httpClient)
	a.scheduler = scheduler.New()
	if err := a.scheduler.Add("crypto-prices", cfg.Crypto.RefreshSpec, a.feed.Run); err != nil {
		logrus.Fatalf("failed to schedule price refresh: %v", err)
	}

	cryptoService := service.NewCryptoService(
		repository.New(db),
		a.feed,
		client.NewAccountClient(cfg.Services.AccountURL, cfg.Services.Timeout),
		exchange.NewConverter(cfg.Exchange.URL, cfg.Exchange.APIKey, cfg.Exchange.CacheTTL, httpClient),
		a.publisher,
	)
	a.handler = handler.NewCryptoHandler(cryptoService)

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(a.handler, auth)
}

func (a *App) Run(ctx context.Context) error {
	a.feed.Run(ctx)
	a.scheduler.Start()

	err := server.Run(ctx, a.config, a.Router)

	<-a.scheduler.Stop().Done()
	if perr := a.publisher.Close(); perr != nil {
		logrus.Errorf("closing publisher: %v", perr)
	}
	return err
}

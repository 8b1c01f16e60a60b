package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/exchange"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/portfolio/handler"
	"github.com/jeffleon2/ebanking/internal/portfolio/models"
	"github.com/jeffleon2/ebanking/internal/portfolio/repository"
	"github.com/jeffleon2/ebanking/internal/portfolio/service"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Portfolio{}, &models.PortfolioTransfer{}, &models.BankAccount{}, &models.Funding{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicAuditEvents,
	}, cfg.Kafka.GetRetryConfig())

	converter := exchange.NewConverter(cfg.Exchange.URL, cfg.Exchange.APIKey, cfg.Exchange.CacheTTL, &http.Client{Timeout: cfg.Services.Timeout})
	portfolios := repository.New(db)
	portfolioHandler := handler.NewPortfolioHandler(service.NewPortfolioService(portfolios, converter, a.publisher))
	gatewayHandler := handler.NewGatewayHandler(service.NewGatewayService(repository.NewGateway(db), portfolios, converter, a.publisher))

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(portfolioHandler, gatewayHandler, auth)
}

func (a *App) Run(ctx context.Context) error {
	err := server.Run(ctx, a.config, a.Router)
	if perr := a.publisher.Close(); perr != nil {
		logrus.Errorf("closing publisher: %v", perr)
	}
	return err
}

package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/jeffleon2/ebanking/internal/wallet/handler"
	"github.com/jeffleon2/ebanking/internal/wallet/models"
	"github.com/jeffleon2/ebanking/internal/wallet/repository"
	"github.com/jeffleon2/ebanking/internal/wallet/service"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.WalletHandler
	publisher *publisher.KafkaPublisher
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Wallet{}, &models.Expense{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicWalletExpenseCreated,
		events.TopicAuditEvents,
	}, cfg.Kafka.GetRetryConfig())

	accounts := client.NewAccountClient(cfg.Services.AccountURL, cfg.Services.Timeout)
	walletService := service.NewWalletService(repository.New(db), accounts, a.publisher)
	a.handler = handler.Wallet(walletService)

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
		logrus.Errorf("Error closing publisher: %v", perr)
	}
	logrus.Info("Wallet service stopped")
	return err
}

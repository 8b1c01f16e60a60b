package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/customer/handler"
	"github.com/jeffleon2/ebanking/internal/customer/models"
	"github.com/jeffleon2/ebanking/internal/customer/repository"
	"github.com/jeffleon2/ebanking/internal/customer/service"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	handler   *handler.CustomerHandler
	publisher *publisher.KafkaPublisher
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicCustomerKYCUpdated,
		events.TopicAuditEvents,
	}, cfg.Kafka.GetRetryConfig())

	a.handler = handler.NewCustomerHandler(service.NewCustomerService(repository.New(db), a.publisher))

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

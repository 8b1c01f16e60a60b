package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/jeffleon2/ebanking/internal/events"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/publisher"
	"github.com/jeffleon2/ebanking/internal/recurring/handler"
	"github.com/jeffleon2/ebanking/internal/recurring/models"
	"github.com/jeffleon2/ebanking/internal/recurring/repository"
	"github.com/jeffleon2/ebanking/internal/recurring/service"
	"github.com/jeffleon2/ebanking/internal/scheduler"
	"github.com/jeffleon2/ebanking/internal/server"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
	scheduler *scheduler.Scheduler
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.RecurringPayment{}); err != nil {
		logrus.Fatalf("failed to auto migrate: %v", err)
	}

	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), []string{
		events.TopicRecurringExecuted,
		events.TopicAuditEvents,
	}, cfg.Kafka.GetRetryConfig())

	recurring := service.NewRecurringService(
		repository.New(db),
		client.NewCardClient(cfg.Services.CardURL, cfg.Services.Timeout),
		client.NewPortfolioClient(cfg.Services.PortfolioURL, cfg.Services.Timeout),
		a.publisher,
	)
	if signer := middleware.NewSigner(cfg.Auth, 5*time.Minute); signer != nil {
		recurring.Signer = signer
	} else {
		logrus.Warn("JWT_SECRET not set: scheduled charges are sent with identity headers only")
	}

	a.scheduler = scheduler.New()
	if err := a.scheduler.Add("recurring-payments", cfg.Scheduler.RecurringSpec, recurring.Run); err != nil {
		logrus.Fatalf("failed to schedule recurring payments: %v", err)
	}

	auth, err := middleware.NewAuthenticator(cfg.Auth)
	if err != nil {
		logrus.Fatalf("failed to configure authentication: %v", err)
	}
	a.Router = server.NewRouter(cfg)
	a.RegisterRoutes(handler.NewRecurringHandler(recurring), auth)
}

func (a *App) Run(ctx context.Context) error {
	a.scheduler.Start()

	err := server.Run(ctx, a.config, a.Router)

	<-a.scheduler.Stop().Done()
	if perr := a.publisher.Close(); perr != nil {
		logrus.Errorf("closing publisher: %v", perr)
	}
	return err
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/assistant/app"
	"github.com/jeffleon2/ebanking/internal/assistant/service"
	"github.com/jeffleon2/ebanking/internal/logger"
)

func main() {
	cfg, err := config.New(service.ServiceName)
	if err != nil {
		logger.Setup(service.ServiceName, "info", "text").Errorf("Error reading config: %v", err)
		os.Exit(1)
	}
	log := logger.Setup(cfg.APP.Name, cfg.APP.LogLevel, cfg.APP.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	myApp := &app.App{}
	myApp.Initialize(cfg)
	if err := myApp.Run(ctx); err != nil {
		log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}

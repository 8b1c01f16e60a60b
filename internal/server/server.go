package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/ebanking/config"
	"github.com/jeffleon2/ebanking/internal/middleware"
	"github.com/jeffleon2/ebanking/internal/validation"
	"github.com/sirupsen/logrus"
)

// NewRouter returns a gin engine with recovery, correlation ids, access logs
// and the custom binding validators, plus GET /health.
func NewRouter(cfg *config.Config) *gin.Engine {
	if !cfg.APP.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	validation.RegisterGin()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Correlation(), middleware.AccessLog(cfg.APP.Name))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": cfg.APP.Name})
	})
	return r
}

// Run serves router on APP_PORT until ctx is cancelled, then drains
// in-flight requests for up to 10 seconds.
func Run(ctx context.Context, cfg *config.Config, router http.Handler) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.APP.PORT),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.APP.PORT).Infof("%s listening", cfg.APP.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

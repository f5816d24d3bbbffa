package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aliskhannn/flash-cards-bot/internal/app"
	"github.com/aliskhannn/flash-cards-bot/internal/config"
	"github.com/aliskhannn/flash-cards-bot/internal/delivery/webhook"
	"github.com/aliskhannn/flash-cards-bot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	a, err := app.New(cfg, lg)
	if err != nil {
		lg.Fatal("failed to initialize", zap.Error(err))
	}
	defer a.Close()

	gin.SetMode(gin.ReleaseMode)
	if cfg.Env != "production" {
		gin.SetMode(gin.DebugMode)
	}

	h := webhook.NewHandler(a.Engine, a.Catalog, cfg.Speech.BreakTime, cfg.DefaultLocale, lg)
	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      webhook.NewRouter(h, lg.Named("http")),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		lg.Info("starting HTTP server", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	lg.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	lg.Info("server exiting")
}

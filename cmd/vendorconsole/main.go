package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xw1nchester/foodkart-vendor/internal/app"
	"github.com/xw1nchester/foodkart-vendor/internal/config"
	"github.com/xw1nchester/foodkart-vendor/internal/logging"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log, err := logging.New(cfg.Logger, cfg.Env)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer log.Sync()

	application := app.NewApp(log, *cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting server",
			zap.String("addr", cfg.HTTPServer.Address),
			zap.String("env", cfg.Env),
			zap.String("api", cfg.API.BaseURL),
		)
		application.MustRun()
	}()

	<-ctx.Done()

	log.Info("stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server gracefully", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

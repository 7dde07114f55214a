package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/xw1nchester/countries-backend/internal/app"
	"github.com/xw1nchester/countries-backend/internal/config"
	"github.com/xw1nchester/countries-backend/internal/logging"
	"go.uber.org/zap"
)

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg := config.MustLoad()

	log, err := logging.New(cfg.Env)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, log, *cfg)
	if err != nil {
		log.Fatal("failed to init app", zap.Error(err))
	}

	go application.MustRun()

	<-ctx.Done()

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown gracefully", zap.Error(err))
		return
	}

	log.Info("server stopped")
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"weatherdash.app/internal/app"
)

const shutdownTimeout = 30 * time.Second

func main() {
	bootstrap, _ := zap.NewProduction()
	defer func() { _ = bootstrap.Sync() }()

	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		bootstrap.Info("No .env file found or error loading it")
	}

	application, err := app.NewApplication()
	if err != nil {
		bootstrap.Error("Failed to initialize application", zap.Error(err))
		os.Exit(1)
	}

	bootstrap.Info("Server configuration",
		zap.Int("port", application.Config().Server.Port),
		zap.String("cache", application.Config().Cache.Type.String()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			bootstrap.Error("Failed to start application", zap.Error(err))
			_ = application.Shutdown(context.Background())
			os.Exit(1)
		}
	case <-ctx.Done():
		bootstrap.Info("Received shutdown signal...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		bootstrap.Error("Error during graceful shutdown", zap.Error(err))
		os.Exit(1)
	}
}

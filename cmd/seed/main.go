package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"weatherdash.app/internal/adapters/external"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/app"
	"weatherdash.app/internal/config"
)

func main() {
	bootstrap, _ := zap.NewProduction()
	defer func() { _ = bootstrap.Sync() }()

	if err := godotenv.Load(); err != nil {
		bootstrap.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadSeedConfig()
	if err != nil {
		bootstrap.Error("Failed to load configuration", zap.Error(err))
		os.Exit(1)
	}

	logger, err := infrastructure.NewZapLogger(cfg.Log)
	if err != nil {
		bootstrap.Error("Failed to create logger", zap.Error(err))
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		bootstrap.Error("Failed to connect to database", zap.Error(err))
		os.Exit(1)
	}

	kv, err := external.NewCacheProviderFactory().CreateCacheProvider(&cfg.Cache)
	if err != nil {
		bootstrap.Error("Failed to connect to cache", zap.Error(err))
		os.Exit(1)
	}
	defer func() { _ = kv.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := app.SeedDemoData(ctx, db, kv, infrastructure.SystemClock{}, logger)
	if err != nil {
		bootstrap.Error("Seeding failed", zap.Error(err))
		os.Exit(1)
	}

	bootstrap.Info("Database seeded",
		zap.Uint("demo_user_id", result.User.ID),
		zap.Strings("cities", result.Cities))
}

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/recicla365/app-ecopontos/internal/config"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"go.uber.org/zap"
)

// seed imports the demo collection points into the configured storage
// backend. Points whose ids are already stored are left untouched, so the
// command can run on every deploy.
func main() {
	_ = godotenv.Load()

	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	backend, closeStorage, err := storage.Open(ctx)
	if err != nil {
		logging.Logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer closeStorage(context.Background())

	points := services.NewCollectionPointStore(backend, logging.Logger)
	seeded, err := services.SeedCollectionPoints(ctx, points)
	if err != nil {
		logging.Logger.Error("failed to seed collection points", zap.Error(err))
		return
	}

	stats, err := points.GetStatistics(ctx)
	if err != nil {
		logging.Logger.Error("failed to read collection point statistics", zap.Error(err))
		return
	}

	logging.Logger.Info("seed finished",
		zap.String("storage", config.AppConfig.StorageBackend),
		zap.Int("seeded", seeded),
		zap.Int("total", stats.Total),
	)
}

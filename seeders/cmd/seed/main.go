package main

import (
	"context"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"supermaids/internal/migrations"
	"supermaids/internal/repositories"
	"supermaids/pkg/config"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
	applogger "supermaids/pkg/logger"
	"supermaids/pkg/validation"
	"supermaids/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	schemaOnly := flag.Bool("schema-only", false, "Только применить миграции, данные не трогать")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		log.Printf("❌ Ошибка конфигурации: %v", err)
		os.Exit(apperrors.ExitSetup)
	}

	logger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Printf("❌ Ошибка логгера: %v", err)
		os.Exit(apperrors.ExitSetup)
	}
	defer func() { _ = logger.Sync() }()

	if err := seed(context.Background(), cfg, *schemaOnly, logger); err != nil {
		logger.Error("❌ Наполнение не выполнено", zap.Error(err))
		os.Exit(apperrors.ExitCode(err))
	}
	log.Println("======================================================")
}

func seed(ctx context.Context, cfg *config.Config, schemaOnly bool, logger *zap.Logger) error {
	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("📦 Хранилище", zap.String("driver", cfg.Database.Driver), zap.String("path", cfg.Database.Path))

	if err := migrations.Apply(ctx, store, logger); err != nil {
		return err
	}
	if schemaOnly {
		logger.Info("✅ Схема готова, наполнение пропущено")
		return nil
	}

	repos := repositories.New(store)
	return seeders.NewSeeder(store.DB, repos, validation.New(), logger).Seed(ctx, seeders.DefaultDataset())
}

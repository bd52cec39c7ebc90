package main

import (
	"context"

	"go.uber.org/zap"

	"gym-system/pkg/config"
	"gym-system/pkg/database/postgresql"
	"gym-system/pkg/logger"
	"gym-system/seeders"
)

func main() {
	zapLogger := logger.NewLogger()
	defer zapLogger.Sync()

	cfg := config.New()
	ctx := context.Background()

	if err := postgresql.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	db, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		zapLogger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := seeders.Run(ctx, db, zapLogger); err != nil {
		zapLogger.Fatal("seeding failed", zap.Error(err))
	}

	zapLogger.Info("database seeding completed")
}

package main

import (
	"context"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gym-system/internal/routes"
	"gym-system/pkg/config"
	"gym-system/pkg/database/postgresql"
	"gym-system/pkg/filestorage"
	"gym-system/pkg/logger"
	"gym-system/pkg/middleware"
	"gym-system/pkg/validation"
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

	store, err := filestorage.NewLocalFileStorage(cfg.Upload.Dir)
	if err != nil {
		zapLogger.Fatal("upload directory bootstrap failed", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.CORS.Origin},
	}))
	e.Use(middleware.RequestLogger(zapLogger))

	routes.RegisterUploadsRoute(e, cfg.Upload.Dir)
	routes.InitRouter(e, db, store, zapLogger)

	zapLogger.Info("starting server", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}

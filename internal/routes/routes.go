package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-system/internal/controllers"
	"gym-system/pkg/filestorage"
)

func InitRouter(e *echo.Echo, db *pgxpool.Pool, store filestorage.FileStorageInterface, logger *zap.Logger) {
	api := e.Group("/api")

	runEquipmentRouter(api, db, store, logger)
	runMemberRouter(api, db, logger)
	runTrainerRouter(api, db, store, logger)
	runUploadRouter(api, store, logger)

	api.GET("/health", controllers.NewHealthController().Check)
}

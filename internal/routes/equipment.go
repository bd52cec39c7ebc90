package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-system/internal/controllers"
	"gym-system/internal/repositories"
	"gym-system/internal/services"
	"gym-system/pkg/filestorage"
)

func runEquipmentRouter(api *echo.Group, db *pgxpool.Pool, store filestorage.FileStorageInterface, logger *zap.Logger) {
	repo := repositories.NewEquipmentRepository(db)
	service := services.NewEquipmentService(repo, store, logger)
	controller := controllers.NewEquipmentController(service, store, logger)

	group := api.Group("/equipment")
	group.GET("", controller.GetEquipments)
	group.GET("/export", controller.ExportEquipments)
	group.GET("/:id", controller.FindEquipment)
	group.POST("", controller.CreateEquipment)
	group.PUT("/:id", controller.UpdateEquipment)
	group.DELETE("/:id/remove-image", controller.RemoveEquipmentImage)
	group.DELETE("/:id", controller.DeleteEquipment)
}

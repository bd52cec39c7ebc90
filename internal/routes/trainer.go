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

func runTrainerRouter(api *echo.Group, db *pgxpool.Pool, store filestorage.FileStorageInterface, logger *zap.Logger) {
	repo := repositories.NewTrainerRepository(db)
	service := services.NewTrainerService(repo, store, logger)
	controller := controllers.NewTrainerController(service, logger)

	group := api.Group("/trainers")
	group.GET("", controller.GetTrainers)
	group.GET("/:id", controller.FindTrainer)
	group.POST("", controller.CreateTrainer)
	group.PUT("/:id", controller.UpdateTrainer)
	group.DELETE("/:id", controller.DeleteTrainer)
}

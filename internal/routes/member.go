package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-system/internal/controllers"
	"gym-system/internal/repositories"
	"gym-system/internal/services"
)

func runMemberRouter(api *echo.Group, db *pgxpool.Pool, logger *zap.Logger) {
	repo := repositories.NewMemberRepository(db)
	service := services.NewMemberService(repo, logger)
	controller := controllers.NewMemberController(service, logger)

	group := api.Group("/members")
	group.GET("", controller.GetMembers)
	group.GET("/:id", controller.FindMember)
	group.POST("", controller.CreateMember)
	group.PUT("/:id", controller.UpdateMember)
	group.DELETE("/:id", controller.DeleteMember)
}

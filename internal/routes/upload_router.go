package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-system/internal/controllers"
	"gym-system/pkg/filestorage"
)

func runUploadRouter(api *echo.Group, store filestorage.FileStorageInterface, logger *zap.Logger) {
	controller := controllers.NewUploadController(store, logger)

	group := api.Group("/upload")
	group.POST("/profile-photo", controller.UploadProfilePhoto)
	group.POST("/certificates", controller.UploadCertificates)
	group.DELETE("/file", controller.DeleteFile)
}

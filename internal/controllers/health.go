package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (c *HealthController) Check(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"message":   "Gym management API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

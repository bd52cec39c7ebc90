package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-system/internal/dto"
	"gym-system/internal/services"
	apperrors "gym-system/pkg/errors"
	"gym-system/pkg/utils"
)

var (
	trainerNumberFields = []string{"hourly_rate"}
	trainerDateFields   = []string{"hire_date"}
)

type TrainerController struct {
	service services.TrainerServiceInterface
	logger  *zap.Logger
}

func NewTrainerController(service services.TrainerServiceInterface, logger *zap.Logger) *TrainerController {
	return &TrainerController{service: service, logger: logger}
}

func (c *TrainerController) GetTrainers(ctx echo.Context) error {
	list, err := c.service.GetTrainers(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Trainer not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, list, "Trainers retrieved successfully", http.StatusOK)
}

func (c *TrainerController) FindTrainer(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.FindTrainer(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Trainer not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Trainer retrieved successfully", http.StatusOK)
}

func (c *TrainerController) CreateTrainer(ctx echo.Context) error {
	fields, err := decodeJSONBody(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	cleaned := utils.NormalizeFields(fields, trainerNumberFields, trainerDateFields)

	var payload dto.CreateTrainerDTO
	if err := utils.DecodeFields(cleaned, &payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.CreateTrainer(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Trainer not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Trainer created successfully", http.StatusCreated)
}

func (c *TrainerController) UpdateTrainer(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fields, err := decodeJSONBody(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	cleaned := utils.NormalizeFields(fields, trainerNumberFields, trainerDateFields)

	var payload dto.UpdateTrainerDTO
	if err := utils.DecodeFields(cleaned, &payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.UpdateTrainer(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Trainer not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Trainer updated successfully", http.StatusOK)
}

func (c *TrainerController) DeleteTrainer(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.DeleteTrainer(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Trainer not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Trainer deleted successfully", http.StatusOK)
}

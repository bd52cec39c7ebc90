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

type MemberController struct {
	service services.MemberServiceInterface
	logger  *zap.Logger
}

func NewMemberController(service services.MemberServiceInterface, logger *zap.Logger) *MemberController {
	return &MemberController{service: service, logger: logger}
}

func (c *MemberController) GetMembers(ctx echo.Context) error {
	list, err := c.service.GetMembers(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Member not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, list, "Members retrieved successfully", http.StatusOK)
}

func (c *MemberController) FindMember(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.FindMember(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Member not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Member retrieved successfully", http.StatusOK)
}

func (c *MemberController) CreateMember(ctx echo.Context) error {
	var payload dto.CreateMemberDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.CreateMember(ctx.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Member not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Member created successfully", http.StatusCreated)
}

func (c *MemberController) UpdateMember(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateMemberDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.UpdateMember(ctx.Request().Context(), id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Member not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, item, "Member updated successfully", http.StatusOK)
}

func (c *MemberController) DeleteMember(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.DeleteMember(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Member not found"), c.logger)
	}
	return utils.SuccessResponse(ctx, nil, "Member deleted successfully", http.StatusOK)
}

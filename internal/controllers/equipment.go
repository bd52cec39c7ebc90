package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-system/internal/dto"
	"gym-system/internal/services"
	apperrors "gym-system/pkg/errors"
	"gym-system/pkg/filestorage"
	"gym-system/pkg/utils"
	"gym-system/pkg/validation"
)

var (
	equipmentNumberFields = []string{"quantity", "purchase_price"}
	equipmentDateFields   = []string{
		"purchase_date", "warranty_end_date", "last_maintenance_date", "next_maintenance_date",
	}
	equipmentListFilters = []string{"category", "condition", "status"}
)

type EquipmentController struct {
	service     services.EquipmentServiceInterface
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		service:     service,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// parseBody implements the upload gate: a multipart request may carry one
// file under "image" which is validated and stored before the field map is
// built; any other request is decoded as a JSON object. Exactly one of the
// two strategies runs per request.
func (c *EquipmentController) parseBody(ctx echo.Context) (map[string]interface{}, string, error) {
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return c.parseMultipartBody(ctx)
	}

	fields, err := decodeJSONBody(ctx)
	if err != nil {
		return nil, "", err
	}
	return fields, "", nil
}

func (c *EquipmentController) parseMultipartBody(ctx echo.Context) (map[string]interface{}, string, error) {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, "", apperrors.NewHttpError(http.StatusBadRequest, "Invalid multipart form", err, nil)
	}

	fields := make(map[string]interface{}, len(form.Value))
	for key, values := range form.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	files := form.File["image"]
	if len(files) == 0 {
		return fields, "", nil
	}

	fileHeader := files[0]
	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", apperrors.NewHttpError(http.StatusBadRequest, "Failed to read uploaded file", err, nil)
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, "equipment_image"); err != nil {
		return nil, "", apperrors.NewHttpError(http.StatusBadRequest, err.Error(), nil, nil)
	}

	relPath, err := c.fileStorage.Save(src, fileHeader.Filename, "equipment")
	if err != nil {
		return nil, "", apperrors.NewHttpError(http.StatusInternalServerError, "Failed to store uploaded file", err, nil)
	}

	return fields, "/uploads/" + relPath, nil
}

func (c *EquipmentController) discardFile(path string) {
	if path == "" {
		return
	}
	if err := c.fileStorage.Delete(path); err != nil {
		c.logger.Error("failed to delete stored file after rejected request",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	filter := utils.ParseListQuery(ctx.Request().URL.Query(), equipmentListFilters)

	list, err := c.service.GetEquipments(ctx.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Equipment not found"), c.logger)
	}

	return utils.SuccessResponse(ctx, list, "Equipment list retrieved successfully", http.StatusOK)
}

func (c *EquipmentController) FindEquipment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.FindEquipment(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Equipment not found"), c.logger)
	}

	return utils.SuccessResponse(ctx, item, "Equipment retrieved successfully", http.StatusOK)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	fields, storedPath, err := c.parseBody(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cleaned := utils.NormalizeFields(fields, equipmentNumberFields, equipmentDateFields)

	var payload dto.CreateEquipmentDTO
	if err := utils.DecodeFields(cleaned, &payload); err != nil {
		c.discardFile(storedPath)
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}

	// validation failures must not leave the stored file behind
	if err := ctx.Validate(&payload); err != nil {
		c.discardFile(storedPath)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.CreateEquipment(ctx.Request().Context(), payload, storedPath)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Equipment not found"), c.logger)
	}

	return utils.SuccessResponse(ctx, item, "Equipment created successfully", http.StatusCreated)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fields, storedPath, err := c.parseBody(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	cleaned := utils.NormalizeFields(fields, equipmentNumberFields, equipmentDateFields)

	var payload dto.UpdateEquipmentDTO
	if err := utils.DecodeFields(cleaned, &payload); err != nil {
		c.discardFile(storedPath)
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}

	if err := ctx.Validate(&payload); err != nil {
		c.discardFile(storedPath)
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.UpdateEquipment(ctx.Request().Context(), id, payload, storedPath)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Equipment not found"), c.logger)
	}

	return utils.SuccessResponse(ctx, item, "Equipment updated successfully", http.StatusOK)
}

func (c *EquipmentController) RemoveEquipmentImage(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	item, err := c.service.RemoveEquipmentImage(ctx.Request().Context(), id)
	if err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Equipment not found"), c.logger)
	}

	return utils.SuccessResponse(ctx, item, "Equipment image removed successfully", http.StatusOK)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.service.DeleteEquipment(ctx.Request().Context(), id); err != nil {
		return utils.ErrorResponse(ctx, serviceError(err, "Equipment not found"), c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "Equipment deleted successfully", http.StatusOK)
}

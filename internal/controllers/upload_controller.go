package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"gym-system/config"
	"gym-system/internal/dto"
	apperrors "gym-system/pkg/errors"
	"gym-system/pkg/filestorage"
	"gym-system/pkg/utils"
	"gym-system/pkg/validation"
)

const maxCertificateFiles = 10

type UploadController struct {
	fileStorage filestorage.FileStorageInterface
	logger      *zap.Logger
}

func NewUploadController(fileStorage filestorage.FileStorageInterface, logger *zap.Logger) *UploadController {
	return &UploadController{fileStorage: fileStorage, logger: logger}
}

func (c *UploadController) storeFile(fileHeader *multipart.FileHeader, contextName string) (*dto.UploadedFileDTO, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Failed to read uploaded file", err, nil)
	}
	defer src.Close()

	if err := validation.ValidateFile(fileHeader, src, contextName); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, err.Error(), nil, nil)
	}

	prefix := config.UploadContexts[contextName].PathPrefix
	relPath, err := c.fileStorage.Save(src, fileHeader.Filename, prefix)
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, "Failed to store uploaded file", err, nil)
	}

	return &dto.UploadedFileDTO{
		Filename: fileHeader.Filename,
		URL:      "/uploads/" + relPath,
		Size:     fileHeader.Size,
		MimeType: fileHeader.Header.Get(echo.HeaderContentType),
	}, nil
}

// UploadProfilePhoto stores a single image from the "file" field.
func (c *UploadController) UploadProfilePhoto(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "No file uploaded", nil, nil), c.logger)
	}

	uploaded, err := c.storeFile(fileHeader, "profile_photo")
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, uploaded, "Profile photo uploaded successfully", http.StatusOK)
}

// UploadCertificates stores up to maxCertificateFiles documents from the
// "files" field. The batch is all-or-nothing: when one file fails, the ones
// already stored are deleted again.
func (c *UploadController) UploadCertificates(ctx echo.Context) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid multipart form", err, nil), c.logger)
	}

	files := form.File["files"]
	if len(files) == 0 {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "No files uploaded", nil, nil), c.logger)
	}
	if len(files) > maxCertificateFiles {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Too many files", nil, nil), c.logger)
	}

	uploaded := make([]dto.UploadedFileDTO, 0, len(files))
	for _, fileHeader := range files {
		item, err := c.storeFile(fileHeader, "certificate")
		if err != nil {
			for _, stored := range uploaded {
				if delErr := c.fileStorage.Delete(stored.URL); delErr != nil {
					c.logger.Error("failed to delete certificate during rollback",
						zap.String("path", stored.URL),
						zap.Error(delErr),
					)
				}
			}
			return utils.ErrorResponse(ctx, err, c.logger)
		}
		uploaded = append(uploaded, *item)
	}

	return utils.SuccessResponse(ctx, uploaded, "Certificates uploaded successfully", http.StatusOK)
}

// DeleteFile removes a previously uploaded file by its public path.
func (c *UploadController) DeleteFile(ctx echo.Context) error {
	var payload dto.DeleteFileDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil), c.logger)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if !c.fileStorage.Exists(payload.FilePath) {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusNotFound, "File not found", nil, nil), c.logger)
	}

	if err := c.fileStorage.Delete(payload.FilePath); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusInternalServerError, "Failed to delete file", err, nil), c.logger)
	}

	return utils.SuccessResponse(ctx, nil, "File deleted successfully", http.StatusOK)
}

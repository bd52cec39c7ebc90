package utils

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gym-system/pkg/errors"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
	Errors  []string    `json:"errors,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{Status: true, Body: body, Message: message})
}

// ErrorResponse renders any error as JSON. HttpError keeps its status code,
// ValidationErrors become a 400 with the complete per-field error list,
// everything else is a 500 whose detail is only exposed in development.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return ctx.JSON(httpErr.Code, &HTTPResponse{Status: false, Message: httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return ctx.JSON(http.StatusBadRequest, &HTTPResponse{
			Status:  false,
			Message: "Validation failed",
			Errors:  ValidationMessages(validationErrors),
		})
	}

	logger.Error("Unexpected error", zap.Error(err))
	message := "Internal server error"
	if os.Getenv("APP_ENV") == "development" {
		message = err.Error()
	}
	return ctx.JSON(http.StatusInternalServerError, &HTTPResponse{Status: false, Message: message})
}

// ValidationMessages flattens ValidationErrors into client-facing messages,
// one per failed field, so a single response reports every violation.
func ValidationMessages(errs validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, validationMessage(e))
	}
	return msgs
}

func validationMessage(e validator.FieldError) string {
	field := e.Field()

	switch field {
	case "quantity":
		return "Valid quantity is required"
	case "email":
		return "Valid email is required"
	case "phone", "emergency_contact_phone":
		return "Invalid phone number"
	}

	label := fieldLabel(field)
	switch e.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "oneof":
		return label + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "gte":
		return label + " must be at least " + e.Param()
	case "max":
		return label + " is too long"
	default:
		return label + " is invalid"
	}
}

func fieldLabel(field string) string {
	label := strings.ReplaceAll(field, "_", " ")
	if label == "" {
		return "Field"
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

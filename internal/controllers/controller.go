package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "gym-system/pkg/errors"
)

// decodeJSONBody reads the body as a raw field map. UseNumber keeps numeric
// values intact until normalization decides how to coerce them.
func decodeJSONBody(ctx echo.Context) (map[string]interface{}, error) {
	fields := make(map[string]interface{})
	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Invalid JSON body", err, nil)
	}
	return fields, nil
}

func parseID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewHttpError(http.StatusBadRequest, "Invalid id", nil, nil)
	}
	return id, nil
}

// serviceError shapes a service failure for the response writer. Typed
// HttpErrors pass through untouched, ErrNotFound gets the resource-specific
// 404 message, and everything else falls through to the generic 500 path.
func serviceError(err error, notFoundMessage string) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		return err
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewHttpError(http.StatusNotFound, notFoundMessage, nil, nil)
	}
	return err
}

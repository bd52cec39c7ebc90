package routes

import (
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// extension to Content-Type, for everything the upload contexts accept
var staticContentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
}

// RegisterUploadsRoute serves stored files under /uploads/ with an explicit
// Content-Type per extension. The requested path is cleaned against
// traversal before it is joined to the base directory.
func RegisterUploadsRoute(e *echo.Echo, baseDir string) {
	e.GET("/uploads/*", func(ctx echo.Context) error {
		rel := filepath.Clean("/" + ctx.Param("*"))
		fullPath := filepath.Join(baseDir, rel)

		if contentType, ok := staticContentTypes[strings.ToLower(filepath.Ext(fullPath))]; ok {
			ctx.Response().Header().Set(echo.HeaderContentType, contentType)
		}

		return ctx.File(fullPath)
	})
}

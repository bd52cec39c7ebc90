package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"
	"strings"

	"gym-system/config"
)

// ValidateFile checks an uploaded file against the named upload context
// from config.UploadContexts ("equipment_image", "profile_photo",
// "certificate"). The MIME type is sniffed from the first 512 bytes, not
// taken from the client headers; the reader is rewound afterwards.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName string) error {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return fmt.Errorf("unknown upload context %q", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return fmt.Errorf("file size (%.2f MB) exceeds the %d MB limit", float64(fileHeader.Size)/1024/1024, rules.MaxSizeMB)
		}
	}

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return fmt.Errorf("reading file header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("rewinding file: %w", err)
	}

	mimeType := http.DetectContentType(buffer)
	// DetectContentType appends parameters to some types (e.g. text/plain;
	// charset=utf-8); the allow-lists only carry bare types
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = mimeType[:idx]
	}

	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return fmt.Errorf("unsupported file type: %s", mimeType)
	}

	return nil
}

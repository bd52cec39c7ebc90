package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type FileStorageInterface interface {
	Save(file io.Reader, originalFileName string, prefix string) (filePath string, err error)
	Delete(filePath string) error
	Exists(filePath string) bool
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorageInterface, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

// Save writes the file under basePath/prefix with a collision-resistant
// name (nanosecond timestamp + uuid, original extension preserved) and
// returns the path relative to basePath.
func (s *LocalFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	ext := filepath.Ext(originalFileName)
	uniqueFileName := fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String(), ext)

	fullDirPath := filepath.Join(s.basePath, prefix)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueFileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(prefix, uniqueFileName)), nil
}

// relativeUploadPath reduces the public form ("/uploads/equipment/x.png")
// or the relative form ("equipment/x.png") to a path under basePath. Paths
// that would escape the upload root are rejected; the input may come
// straight from a client body.
func relativeUploadPath(fileURL string) (string, bool) {
	relativePath := strings.TrimPrefix(fileURL, "/uploads/")
	relativePath = strings.TrimPrefix(relativePath, "/")

	if relativePath == "" || !filepath.IsLocal(filepath.FromSlash(relativePath)) {
		return "", false
	}
	return relativePath, true
}

// Delete removes a stored file. A missing file counts as success, so
// compensation paths can call it unconditionally.
func (s *LocalFileStorage) Delete(fileURL string) error {
	relativePath, ok := relativeUploadPath(fileURL)
	if !ok {
		return fmt.Errorf("invalid file path: %s", fileURL)
	}

	fullPath := filepath.Join(s.basePath, relativePath)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(fullPath)
}

func (s *LocalFileStorage) Exists(fileURL string) bool {
	relativePath, ok := relativeUploadPath(fileURL)
	if !ok {
		return false
	}

	_, err := os.Stat(filepath.Join(s.basePath, relativePath))
	return err == nil
}

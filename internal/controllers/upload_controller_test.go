package controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gym-system/internal/controllers"
	"gym-system/pkg/filestorage"
	"gym-system/pkg/validation"
)

type uploadTestEnv struct {
	echo       *echo.Echo
	storage    filestorage.FileStorageInterface
	controller *controllers.UploadController
	uploadDir  string
}

func newUploadTestEnv(t *testing.T) *uploadTestEnv {
	t.Helper()

	dir := t.TempDir()
	storage, err := filestorage.NewLocalFileStorage(dir)
	require.NoError(t, err)

	e := echo.New()
	e.Validator = validation.New()

	return &uploadTestEnv{
		echo:       e,
		storage:    storage,
		controller: controllers.NewUploadController(storage, zap.NewNop()),
		uploadDir:  dir,
	}
}

func (env *uploadTestEnv) storedFiles(t *testing.T, prefix string) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(env.uploadDir, prefix))
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

type uploadFile struct {
	name    string
	content []byte
}

func fileUploadRequest(t *testing.T, target, fieldName string, files ...uploadFile) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, file := range files {
		part, err := writer.CreateFormFile(fieldName, file.name)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadProfilePhoto(t *testing.T) {
	env := newUploadTestEnv(t)

	req := fileUploadRequest(t, "/api/upload/profile-photo", "file", uploadFile{"me.png", pngSignature})
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.UploadProfilePhoto(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeResponse(t, rec)["body"].(map[string]interface{})
	url := body["url"].(string)
	assert.True(t, strings.HasPrefix(url, "/uploads/profile-photos/"))
	assert.Equal(t, "me.png", body["filename"])
	assert.True(t, env.storage.Exists(url))
}

func TestUploadProfilePhoto_NoFile(t *testing.T) {
	env := newUploadTestEnv(t)

	req := fileUploadRequest(t, "/api/upload/profile-photo", "file")
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.UploadProfilePhoto(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestUploadProfilePhoto_RejectsNonImage(t *testing.T) {
	env := newUploadTestEnv(t)

	req := fileUploadRequest(t, "/api/upload/profile-photo", "file", uploadFile{"resume.txt", []byte("not an image at all")})
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.UploadProfilePhoto(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.storedFiles(t, "profile-photos"))
}

func TestUploadCertificates(t *testing.T) {
	env := newUploadTestEnv(t)

	req := fileUploadRequest(t, "/api/upload/certificates", "files",
		uploadFile{"cpr.pdf", []byte("%PDF-1.4 certification body")},
		uploadFile{"diploma.png", pngSignature},
	)
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.UploadCertificates(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)["body"].([]interface{})
	assert.Len(t, body, 2)
	assert.Len(t, env.storedFiles(t, "certificates"), 2)
}

func TestUploadCertificates_RollbackOnFailure(t *testing.T) {
	env := newUploadTestEnv(t)

	// the second file fails validation, so the first must be rolled back
	req := fileUploadRequest(t, "/api/upload/certificates", "files",
		uploadFile{"cpr.pdf", []byte("%PDF-1.4 certification body")},
		uploadFile{"notes.txt", []byte("just some plain text")},
	)
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.UploadCertificates(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.storedFiles(t, "certificates"))
}

func TestUploadCertificates_NoFiles(t *testing.T) {
	env := newUploadTestEnv(t)

	req := fileUploadRequest(t, "/api/upload/certificates", "files")
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.UploadCertificates(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No files uploaded")
}

func TestDeleteFile(t *testing.T) {
	env := newUploadTestEnv(t)

	relPath, err := env.storage.Save(strings.NewReader("content"), "me.png", "profile-photos")
	require.NoError(t, err)
	publicPath := "/uploads/" + relPath

	req := jsonRequest(http.MethodDelete, "/api/upload/file", `{"file_path":"`+publicPath+`"}`)
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.DeleteFile(ctx))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, env.storage.Exists(publicPath))

	// a second delete reports the file as gone
	req = jsonRequest(http.MethodDelete, "/api/upload/file", `{"file_path":"`+publicPath+`"}`)
	rec = httptest.NewRecorder()
	ctx = env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.DeleteFile(ctx))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "File not found")
}

func TestDeleteFile_RejectsTraversal(t *testing.T) {
	env := newUploadTestEnv(t)

	outside := filepath.Join(filepath.Dir(env.uploadDir), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep out"), 0o644))

	req := jsonRequest(http.MethodDelete, "/api/upload/file", `{"file_path":"/uploads/../secret.txt"}`)
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.DeleteFile(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, err := os.Stat(outside)
	assert.NoError(t, err, "files outside the upload root must be untouchable")
}

func TestDeleteFile_MissingPath(t *testing.T) {
	env := newUploadTestEnv(t)

	req := jsonRequest(http.MethodDelete, "/api/upload/file", `{}`)
	rec := httptest.NewRecorder()
	ctx := env.echo.NewContext(req, rec)

	require.NoError(t, env.controller.DeleteFile(ctx))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

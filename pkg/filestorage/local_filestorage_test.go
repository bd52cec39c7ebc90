package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (FileStorageInterface, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := NewLocalFileStorage(dir)
	require.NoError(t, err)
	return storage, dir
}

func TestLocalFileStorage_Save(t *testing.T) {
	storage, dir := newTestStorage(t)

	relPath, err := storage.Save(strings.NewReader("content"), "photo.png", "equipment")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "equipment/"))
	assert.True(t, strings.HasSuffix(relPath, ".png"), "original extension must be preserved")

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestLocalFileStorage_SaveGeneratesUniqueNames(t *testing.T) {
	storage, _ := newTestStorage(t)

	first, err := storage.Save(strings.NewReader("a"), "same.jpg", "equipment")
	require.NoError(t, err)
	second, err := storage.Save(strings.NewReader("b"), "same.jpg", "equipment")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalFileStorage_DeleteAcceptsPublicPath(t *testing.T) {
	storage, dir := newTestStorage(t)

	relPath, err := storage.Save(strings.NewReader("content"), "photo.png", "equipment")
	require.NoError(t, err)

	require.NoError(t, storage.Delete("/uploads/"+relPath))

	_, statErr := os.Stat(filepath.Join(dir, filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalFileStorage_DeleteIsIdempotent(t *testing.T) {
	storage, _ := newTestStorage(t)

	relPath, err := storage.Save(strings.NewReader("content"), "photo.png", "equipment")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(relPath))
	assert.NoError(t, storage.Delete(relPath), "deleting a missing file is not an error")
	assert.NoError(t, storage.Delete("equipment/never-existed.png"))
}

func TestLocalFileStorage_Exists(t *testing.T) {
	storage, _ := newTestStorage(t)

	relPath, err := storage.Save(strings.NewReader("content"), "photo.png", "equipment")
	require.NoError(t, err)

	assert.True(t, storage.Exists(relPath))
	assert.True(t, storage.Exists("/uploads/"+relPath))

	require.NoError(t, storage.Delete(relPath))
	assert.False(t, storage.Exists(relPath))
}

func TestLocalFileStorage_RejectsTraversal(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(root, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep out"), 0o644))

	baseDir := filepath.Join(root, "uploads")
	storage, err := NewLocalFileStorage(baseDir)
	require.NoError(t, err)

	assert.False(t, storage.Exists("../secret.txt"))
	assert.False(t, storage.Exists("/uploads/../secret.txt"))

	assert.Error(t, storage.Delete("../secret.txt"))
	assert.Error(t, storage.Delete("/uploads/../secret.txt"))

	_, err = os.Stat(outside)
	assert.NoError(t, err, "files outside the upload root must be untouchable")
}

func TestNewLocalFileStorage_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewLocalFileStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// bootstrap must be idempotent
	_, err = NewLocalFileStorage(dir)
	assert.NoError(t, err)
}

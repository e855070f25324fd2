package storage

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", name)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(body, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File["image"][0]
}

func TestLocalBackendSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewLocalBackend(dir)
	assert.NoError(t, err)

	file := testFileHeader(t, "burger.jpg", []byte("fake image bytes"))

	ref, err := backend.Save(context.Background(), "abc123.jpg", file)
	assert.NoError(t, err)
	assert.Equal(t, "uploads/abc123.jpg", ref)

	data, err := os.ReadFile(filepath.Join(dir, "abc123.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), data)

	assert.NoError(t, backend.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(dir, "abc123.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalBackendDeleteMissingIsNoError(t *testing.T) {
	backend, err := NewLocalBackend(t.TempDir())
	assert.NoError(t, err)

	assert.NoError(t, backend.Delete(context.Background(), "uploads/never-existed.jpg"))
}

func TestLocalBackendCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalBackend(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

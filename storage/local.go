package storage

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
)

// LocalBackend stores blobs on the local filesystem under Dir. The reference
// it returns is a slash-separated path relative to the uploads root, which is
// also how the file is addressed under the static /uploads route.
type LocalBackend struct {
	Dir string
}

func NewLocalBackend(dir string) (*LocalBackend, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &LocalBackend{Dir: dir}, nil
}

func (l *LocalBackend) Save(_ context.Context, key string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(l.Dir, key))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join("uploads", key), nil
}

func (l *LocalBackend) Delete(_ context.Context, ref string) error {
	key := path.Base(ref)
	err := os.Remove(filepath.Join(l.Dir, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

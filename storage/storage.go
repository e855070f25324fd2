package storage

import (
	"context"
	"mime/multipart"
	"os"
)

// Backend saves an uploaded file under a caller-chosen key and returns the
// reference to persist on the owning entity. Delete removes a previously
// returned reference; a reference that no longer resolves is not an error.
type Backend interface {
	Save(ctx context.Context, key string, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// FromEnv selects the configured backend. Handlers never branch on the
// backend type themselves; selection happens once at startup.
func FromEnv(ctx context.Context) (Backend, error) {
	if os.Getenv("STORAGE_BACKEND") == "s3" {
		return NewS3Backend(ctx)
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return NewLocalBackend(dir)
}

package services

import (
	"context"
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pisethdev/food-delivery-app/storage"
	"github.com/pisethdev/food-delivery-app/utils"
)

// ErrFileRequired is returned by Attach when no file accompanies a create.
var ErrFileRequired = errors.New("image file is required")

// ImageService keeps an entity's stored file reference consistent with what
// is actually in the storage backend: attach on create, replace on update,
// release on delete. It carries no state of its own.
type ImageService struct {
	store storage.Backend
}

func NewImageService(store storage.Backend) *ImageService {
	return &ImageService{store: store}
}

// Attach stores the incoming file under a fresh unique key and returns the
// reference to persist on the entity. The key is a UUID plus the original
// extension, so concurrent uploads can never collide.
func (s *ImageService) Attach(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrFileRequired
	}

	key := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	return s.store.Save(ctx, key, file)
}

// Replace implements update semantics: with no new file it returns the
// current reference unchanged. With a new file it stores the new blob first
// and then releases the old one, so a failed write never loses the current
// image. Deleting the old blob is best-effort.
func (s *ImageService) Replace(ctx context.Context, current string, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return current, nil
	}

	ref, err := s.Attach(ctx, file)
	if err != nil {
		return "", err
	}

	if current != "" {
		s.Release(ctx, current)
	}
	return ref, nil
}

// Release removes the blob behind ref. Failure is logged and swallowed: a
// stale blob must never fail the owning entity mutation.
func (s *ImageService) Release(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.store.Delete(ctx, ref); err != nil {
		utils.ErrorLogger.Printf("failed to delete blob %s: %v", ref, err)
	}
}

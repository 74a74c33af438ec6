package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/yuriblog/blog-backend/internal/common"
	pkglogger "github.com/yuriblog/blog-backend/pkg/logger"
	"github.com/yuriblog/blog-backend/pkg/storage"
)

// MaxImageSize is the largest accepted image upload
const MaxImageSize = 5 * 1024 * 1024

// Upload prefixes inside the bucket
const (
	PrefixPostImages = "posts"
	PrefixGallery    = "gallery"
	PrefixAvatars    = "avatars"
)

// ObjectStore is the part of the object store the media service needs
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string, size int64) (*storage.UploadResult, error)
	Delete(ctx context.Context, key string) error
}

// MediaService validates images and stores them in the object store
type MediaService struct {
	store   ObjectStore
	maxSize int64
}

// NewMediaService creates a new MediaService. store may be nil when
// storage is disabled.
func NewMediaService(store ObjectStore) *MediaService {
	return &MediaService{store: store, maxSize: MaxImageSize}
}

// UploadImage stores body under prefix and returns its public URL.
// Content must be an image no larger than MaxImageSize.
func (s *MediaService) UploadImage(ctx context.Context, prefix, filename, contentType string, size int64, body io.Reader) (*storage.UploadResult, error) {
	if s.store == nil {
		return nil, common.ErrNotConfigured
	}
	if size > s.maxSize {
		return nil, fmt.Errorf("%w: file too large (max %dMB)", common.ErrInvalidInput, s.maxSize/(1024*1024))
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: %s is not an image", common.ErrInvalidInput, contentType)
	}

	// Read one byte past the limit to catch lying size headers
	data, err := io.ReadAll(io.LimitReader(body, s.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("%w: file too large (max %dMB)", common.ErrInvalidInput, s.maxSize/(1024*1024))
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", common.ErrInvalidInput)
	}

	detected := http.DetectContentType(data)
	if !strings.HasPrefix(detected, "image/") {
		return nil, fmt.Errorf("%w: content is %s, not an image", common.ErrInvalidInput, detected)
	}

	key := storage.GenerateKey(prefix, filename)
	result, err := s.store.Upload(ctx, key, bytes.NewReader(data), detected, int64(len(data)))
	if err != nil {
		pkglogger.Error("upload %s failed: %v", key, err)
		return nil, fmt.Errorf("upload image: %w", err)
	}
	return result, nil
}

// DeleteObject removes a stored object by the key Upload returned.
// Items recorded before keys were kept have none; that is a no-op.
func (s *MediaService) DeleteObject(ctx context.Context, key string) error {
	if s.store == nil || key == "" {
		return nil
	}
	return s.store.Delete(ctx, key)
}

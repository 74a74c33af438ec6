package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"github.com/yuriblog/blog-backend/pkg/cache"
	pkglogger "github.com/yuriblog/blog-backend/pkg/logger"
	"gorm.io/gorm"
)

// GalleryUpload is a new gallery image and its metadata
type GalleryUpload struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// GalleryService gallery business logic
type GalleryService interface {
	ListGallery(ctx context.Context) ([]*domain.GalleryItem, error)
	AddImage(ctx context.Context, upload *GalleryUpload) (*domain.GalleryItem, error)
	DeleteImage(ctx context.Context, id int64) error
}

type galleryService struct {
	repo  repository.GalleryRepository
	media *MediaService
	cache cache.Service
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(repo repository.GalleryRepository, media *MediaService, cacheService cache.Service) GalleryService {
	return &galleryService{repo: repo, media: media, cache: cacheService}
}

func (s *galleryService) ListGallery(ctx context.Context) ([]*domain.GalleryItem, error) {
	if data, err := s.cache.GetGallery(ctx); err == nil {
		var items []*domain.GalleryItem
		if json.Unmarshal(data, &items) == nil {
			return items, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetGallery(ctx, items)
	return items, nil
}

// AddImage uploads the image then records it
func (s *galleryService) AddImage(ctx context.Context, upload *GalleryUpload) (*domain.GalleryItem, error) {
	title := strings.TrimSpace(upload.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrInvalidInput)
	}

	result, err := s.media.UploadImage(ctx, PrefixGallery, upload.Filename, upload.ContentType, upload.Size, upload.Body)
	if err != nil {
		return nil, err
	}

	item := &domain.GalleryItem{Title: title, ImageURL: result.URL, ImageKey: result.Key}
	if desc := strings.TrimSpace(upload.Description); desc != "" {
		item.Description = &desc
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	_ = s.cache.InvalidateGallery(ctx)
	return item, nil
}

// DeleteImage removes the row, then the stored object. A failed object
// delete leaves an orphan in the bucket but does not fail the request.
func (s *galleryService) DeleteImage(ctx context.Context, id int64) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrNotFound
		}
		return err
	}
	_ = s.cache.InvalidateGallery(ctx)

	if err := s.media.DeleteObject(ctx, item.ImageKey); err != nil {
		pkglogger.GetLogger().Warn().Err(err).Int64("gallery_id", id).Str("key", item.ImageKey).Msg("gallery object delete failed")
	}
	return nil
}

package repository

import (
	"context"

	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// GalleryRepository gallery image data access
type GalleryRepository interface {
	List(ctx context.Context) ([]*domain.GalleryItem, error)
	FindByID(ctx context.Context, id int64) (*domain.GalleryItem, error)
	Create(ctx context.Context, item *domain.GalleryItem) error
	Delete(ctx context.Context, id int64) error
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new GalleryRepository
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.GalleryItem, error) {
	var items []*domain.GalleryItem
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

func (r *galleryRepository) FindByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	var item domain.GalleryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *galleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *galleryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.GalleryItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

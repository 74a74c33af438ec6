package repository

import (
	"context"

	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository post data access
type PostRepository interface {
	// List returns all posts, newest publish date first
	List(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// TitlesByID maps post id to title for the given ids. Missing posts are absent.
	TitlesByID(ctx context.Context, ids []int64) (map[int64]string, error)
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) List(ctx context.Context) ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.WithContext(ctx).
		Order("date DESC, id DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) TitlesByID(ctx context.Context, ids []int64) (map[int64]string, error) {
	titles := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	var rows []struct {
		ID    int64
		Title string
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Select("id, title").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title":     post.Title,
			"excerpt":   post.Excerpt,
			"content":   post.Content,
			"image_url": post.ImageURL,
			"date":      post.Date,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the post only. Comments are left in place.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

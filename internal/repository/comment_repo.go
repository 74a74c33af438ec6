package repository

import (
	"context"

	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// CommentRepository comment data access. All lists are newest first.
type CommentRepository interface {
	ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error)
	ListAll(ctx context.Context) ([]*domain.Comment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	Create(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) newest(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("created_at DESC")
}

func (r *commentRepository) ListByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.newest(ctx).Where("post_id = ?", postID).Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListAll(ctx context.Context) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.newest(ctx).Find(&comments).Error
	return comments, err
}

func (r *commentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.newest(ctx).Where("user_id = ?", userID).Find(&comments).Error
	return comments, err
}

func (r *commentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

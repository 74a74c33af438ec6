package repository

import (
	"context"

	"github.com/yuriblog/blog-backend/internal/domain"
	"gorm.io/gorm"
)

// SubscriberRepository newsletter subscriber data access
type SubscriberRepository interface {
	List(ctx context.Context) ([]*domain.Subscriber, error)
	// ListEmails returns every subscriber address in subscription order
	ListEmails(ctx context.Context) ([]string, error)
	// Create returns ErrDuplicate when the email is already present
	Create(ctx context.Context, sub *domain.Subscriber) error
	Delete(ctx context.Context, id int64) error
}

type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new SubscriberRepository
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) List(ctx context.Context) ([]*domain.Subscriber, error) {
	var subs []*domain.Subscriber
	err := r.db.WithContext(ctx).
		Order("subscribed_at DESC, id DESC").
		Find(&subs).Error
	return subs, err
}

func (r *subscriberRepository) ListEmails(ctx context.Context) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&domain.Subscriber{}).
		Order("id ASC").
		Pluck("email", &emails).Error
	return emails, err
}

func (r *subscriberRepository) Create(ctx context.Context, sub *domain.Subscriber) error {
	return translateWriteError(r.db.WithContext(ctx).Create(sub).Error)
}

func (r *subscriberRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.Subscriber{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

package service

import (
	"context"
	"errors"

	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"gorm.io/gorm"
)

// SubscriberService newsletter signup and admin management
type SubscriberService interface {
	Subscribe(ctx context.Context, email string) (*domain.Subscriber, error)
	ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error)
	DeleteSubscriber(ctx context.Context, id int64) error
}

type subscriberService struct {
	repo repository.SubscriberRepository
}

// NewSubscriberService creates a new SubscriberService
func NewSubscriberService(repo repository.SubscriberRepository) SubscriberService {
	return &subscriberService{repo: repo}
}

// Subscribe adds email. A second signup for the same address
// returns common.ErrAlreadySubscribed.
func (s *subscriberService) Subscribe(ctx context.Context, email string) (*domain.Subscriber, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	sub := &domain.Subscriber{Email: email}
	if err := s.repo.Create(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, common.ErrAlreadySubscribed
		}
		return nil, err
	}
	return sub, nil
}

func (s *subscriberService) ListSubscribers(ctx context.Context) ([]*domain.Subscriber, error) {
	return s.repo.List(ctx)
}

func (s *subscriberService) DeleteSubscriber(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrNotFound
	}
	return err
}

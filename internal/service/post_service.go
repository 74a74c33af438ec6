package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"github.com/yuriblog/blog-backend/pkg/cache"
	"gorm.io/gorm"
)

// PostService business logic for posts
type PostService interface {
	ListPosts(ctx context.Context) ([]*domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, req *domain.PostRequest) (*domain.Post, error)
	UpdatePost(ctx context.Context, id int64, req *domain.PostRequest) (*domain.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type postService struct {
	repo  repository.PostRepository
	cache cache.Service
	now   func() time.Time
}

// NewPostService creates a new PostService
func NewPostService(repo repository.PostRepository, cacheService cache.Service) PostService {
	return &postService{repo: repo, cache: cacheService, now: time.Now}
}

// ListPosts returns all posts, newest first. The list is cached briefly.
func (s *postService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	if data, err := s.cache.GetPosts(ctx); err == nil {
		var posts []*domain.Post
		if json.Unmarshal(data, &posts) == nil {
			return posts, nil
		}
	}

	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetPosts(ctx, posts)
	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPostNotFound
	}
	return post, err
}

func (s *postService) CreatePost(ctx context.Context, req *domain.PostRequest) (*domain.Post, error) {
	post, err := s.buildPost(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	_ = s.cache.InvalidatePosts(ctx)
	return post, nil
}

// UpdatePost overwrites the post in place
func (s *postService) UpdatePost(ctx context.Context, id int64, req *domain.PostRequest) (*domain.Post, error) {
	post, err := s.buildPost(req)
	if err != nil {
		return nil, err
	}
	post.ID = id
	if err := s.repo.Update(ctx, post); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPostNotFound
		}
		return nil, err
	}
	_ = s.cache.InvalidatePosts(ctx)
	return s.GetPost(ctx, id)
}

// DeletePost removes the post. Its comments stay.
func (s *postService) DeletePost(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return common.ErrPostNotFound
		}
		return err
	}
	_ = s.cache.InvalidatePosts(ctx)
	return nil
}

func (s *postService) buildPost(req *domain.PostRequest) (*domain.Post, error) {
	title := strings.TrimSpace(req.Title)
	excerpt := strings.TrimSpace(req.Excerpt)
	content := strings.TrimSpace(req.Content)
	if title == "" || excerpt == "" || content == "" {
		return nil, fmt.Errorf("%w: title, excerpt and content are required", common.ErrInvalidInput)
	}

	var imageURL *string
	if req.ImageURL != nil && strings.TrimSpace(*req.ImageURL) != "" {
		u := strings.TrimSpace(*req.ImageURL)
		if err := common.ValidatePublicURL(u); err != nil {
			return nil, err
		}
		imageURL = &u
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = s.now().UTC().Format(domain.DateLayout)
	} else if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", common.ErrInvalidInput)
	}

	return &domain.Post{
		Title:    title,
		Excerpt:  excerpt,
		Content:  content,
		ImageURL: imageURL,
		Date:     date,
	}, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/repository"
	"gorm.io/gorm"
)

// UnknownPostTitle labels comments whose post was deleted
const UnknownPostTitle = "Unknown"

// AdminIdentity is how admin replies are signed
type AdminIdentity struct {
	UserID string
	Email  string
	Avatar string
}

// CommentService business logic for comments
type CommentService interface {
	// ListThreads returns a post's comments grouped into threads
	ListThreads(ctx context.Context, postID int64) ([]*domain.CommentThread, error)
	CreateComment(ctx context.Context, postID int64, author *domain.UserProfile, req *domain.CreateCommentRequest) (*domain.Comment, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Comment, error)

	// Admin
	AdminComments(ctx context.Context) (*domain.AdminComments, error)
	Reply(ctx context.Context, parentID, text string) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id string) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	admin    AdminIdentity
	now      func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, admin AdminIdentity) CommentService {
	return &commentService{comments: comments, posts: posts, admin: admin, now: time.Now}
}

func (s *commentService) ListThreads(ctx context.Context, postID int64) ([]*domain.CommentThread, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildThreads(comments), nil
}

func (s *commentService) CreateComment(ctx context.Context, postID int64, author *domain.UserProfile, req *domain.CreateCommentRequest) (*domain.Comment, error) {
	if author == nil {
		return nil, common.ErrUnauthorized
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", common.ErrInvalidInput)
	}
	if _, err := s.findPost(ctx, postID); err != nil {
		return nil, err
	}

	var parentID *string
	if req.ParentCommentID != nil && *req.ParentCommentID != "" {
		parent, err := s.comments.FindByID(ctx, *req.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, common.ErrInvalidParent
			}
			return nil, err
		}
		if parent.PostID != postID {
			return nil, common.ErrInvalidParent
		}
		id := parent.ID
		parentID = &id
	}

	avatar := ""
	if author.AvatarURL != nil {
		avatar = *author.AvatarURL
	}
	comment := &domain.Comment{
		ID:              uuid.NewString(),
		PostID:          postID,
		UserID:          author.ID,
		AuthorName:      author.Name,
		AuthorEmail:     author.Email,
		AuthorAvatar:    avatar,
		Text:            text,
		ParentCommentID: parentID,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListByUser(ctx context.Context, userID string) ([]*domain.Comment, error) {
	return s.comments.ListByUser(ctx, userID)
}

// AdminComments groups every comment across posts and labels each thread
// with its post title. Replies that cannot be grouped are returned as orphans.
func (s *commentService) AdminComments(ctx context.Context) (*domain.AdminComments, error) {
	comments, err := s.comments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	threads := BuildThreads(comments)

	postIDs := make([]int64, 0, len(threads))
	seen := make(map[int64]struct{})
	for _, t := range threads {
		if _, ok := seen[t.PostID]; !ok {
			seen[t.PostID] = struct{}{}
			postIDs = append(postIDs, t.PostID)
		}
	}
	titles, err := s.posts.TitlesByID(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	for _, t := range threads {
		if title, ok := titles[t.PostID]; ok {
			t.PostTitle = title
		} else {
			t.PostTitle = UnknownPostTitle
		}
	}

	return &domain.AdminComments{Threads: threads, Orphans: Orphans(comments)}, nil
}

// Reply posts an admin answer on the parent's post. Replying to a reply
// attaches to that reply's top-level comment so it stays visible; the
// root must still exist and be top-level.
func (s *commentService) Reply(ctx context.Context, parentID, text string) (*domain.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: reply text is required", common.ErrInvalidInput)
	}

	parent, err := s.comments.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrCommentNotFound
		}
		return nil, err
	}
	rootID := parent.ID
	if parent.ParentCommentID != nil {
		root, err := s.comments.FindByID(ctx, *parent.ParentCommentID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, fmt.Errorf("%w: thread root %s is gone", common.ErrInvalidParent, *parent.ParentCommentID)
		case err != nil:
			return nil, err
		case root.ParentCommentID != nil:
			return nil, fmt.Errorf("%w: thread root %s is itself a reply", common.ErrInvalidParent, root.ID)
		}
		rootID = root.ID
	}

	reply := &domain.Comment{
		ID:              uuid.NewString(),
		PostID:          parent.PostID,
		UserID:          s.admin.UserID,
		AuthorName:      domain.AdminResponseName,
		AuthorEmail:     s.admin.Email,
		AuthorAvatar:    s.admin.Avatar,
		Text:            text,
		ParentCommentID: &rootID,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.comments.Create(ctx, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *commentService) DeleteComment(ctx context.Context, id string) error {
	err := s.comments.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.ErrCommentNotFound
	}
	return err
}

func (s *commentService) findPost(ctx context.Context, postID int64) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrPostNotFound
	}
	return post, err
}

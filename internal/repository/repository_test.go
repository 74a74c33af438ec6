package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/migration"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	posts       PostRepository
	comments    CommentRepository
	subscribers SubscriberRepository
	gallery     GalleryRepository
	profiles    ProfileRepository
	credentials CredentialRepository
}

func (s *RepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1) // one connection keeps the in-memory database alive

	s.Require().NoError(migration.Run(db))

	s.db = db
	s.ctx = context.Background()
	s.posts = NewPostRepository(db)
	s.comments = NewCommentRepository(db)
	s.subscribers = NewSubscriberRepository(db)
	s.gallery = NewGalleryRepository(db)
	s.profiles = NewProfileRepository(db)
	s.credentials = NewCredentialRepository(db)
}

func (s *RepositoryTestSuite) TearDownTest() {
	sqlDB, _ := s.db.DB()
	sqlDB.Close()
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) TestPosts_ListNewestDateFirst() {
	for _, p := range []*domain.Post{
		{Title: "old", Excerpt: "e", Content: "c", Date: "2024-01-01"},
		{Title: "new", Excerpt: "e", Content: "c", Date: "2024-03-01"},
		{Title: "mid", Excerpt: "e", Content: "c", Date: "2024-02-01"},
	} {
		s.Require().NoError(s.posts.Create(s.ctx, p))
	}

	posts, err := s.posts.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(posts, 3)
	s.Equal("new", posts[0].Title)
	s.Equal("mid", posts[1].Title)
	s.Equal("old", posts[2].Title)
}

func (s *RepositoryTestSuite) TestPosts_UpdateAndDelete() {
	post := &domain.Post{Title: "draft", Excerpt: "e", Content: "c", Date: "2024-01-01"}
	s.Require().NoError(s.posts.Create(s.ctx, post))

	post.Title = "final"
	s.Require().NoError(s.posts.Update(s.ctx, post))

	got, err := s.posts.FindByID(s.ctx, post.ID)
	s.Require().NoError(err)
	s.Equal("final", got.Title)

	s.Require().NoError(s.posts.Delete(s.ctx, post.ID))
	_, err = s.posts.FindByID(s.ctx, post.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	s.True(errors.Is(s.posts.Delete(s.ctx, post.ID), gorm.ErrRecordNotFound))
	s.True(errors.Is(s.posts.Update(s.ctx, post), gorm.ErrRecordNotFound))
}

func (s *RepositoryTestSuite) TestPosts_TitlesByID() {
	a := &domain.Post{Title: "A", Excerpt: "e", Content: "c", Date: "2024-01-01"}
	s.Require().NoError(s.posts.Create(s.ctx, a))

	titles, err := s.posts.TitlesByID(s.ctx, []int64{a.ID, 999})
	s.Require().NoError(err)
	s.Equal(map[int64]string{a.ID: "A"}, titles)

	empty, err := s.posts.TitlesByID(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *RepositoryTestSuite) TestComments_NewestFirstAndDeleteLeavesOthers() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	parent := &domain.Comment{ID: uuid.NewString(), PostID: 1, UserID: "u1", Text: "first", CreatedAt: base}
	parentID := parent.ID
	reply := &domain.Comment{ID: uuid.NewString(), PostID: 1, UserID: "admin", Text: "reply", CreatedAt: base.Add(time.Minute), ParentCommentID: &parentID}
	other := &domain.Comment{ID: uuid.NewString(), PostID: 2, UserID: "u1", Text: "elsewhere", CreatedAt: base.Add(2 * time.Minute)}
	for _, c := range []*domain.Comment{parent, reply, other} {
		s.Require().NoError(s.comments.Create(s.ctx, c))
	}

	byPost, err := s.comments.ListByPost(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(byPost, 2)
	s.Equal(reply.ID, byPost[0].ID)
	s.Require().NotNil(byPost[0].ParentCommentID)
	s.Equal(parent.ID, *byPost[0].ParentCommentID)

	all, err := s.comments.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)
	s.Equal(other.ID, all[0].ID)

	mine, err := s.comments.ListByUser(s.ctx, "u1")
	s.Require().NoError(err)
	s.Len(mine, 2)

	s.Require().NoError(s.comments.Delete(s.ctx, parent.ID))
	_, err = s.comments.FindByID(s.ctx, parent.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	// reply survives its parent
	_, err = s.comments.FindByID(s.ctx, reply.ID)
	s.NoError(err)
}

func (s *RepositoryTestSuite) TestSubscribers_DuplicateEmail() {
	s.Require().NoError(s.subscribers.Create(s.ctx, &domain.Subscriber{Email: "a@example.com"}))
	s.Require().NoError(s.subscribers.Create(s.ctx, &domain.Subscriber{Email: "b@example.com"}))

	err := s.subscribers.Create(s.ctx, &domain.Subscriber{Email: "a@example.com"})
	s.True(errors.Is(err, ErrDuplicate), "got %v", err)

	emails, err := s.subscribers.ListEmails(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a@example.com", "b@example.com"}, emails)

	list, err := s.subscribers.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 2)

	s.Require().NoError(s.subscribers.Delete(s.ctx, list[0].ID))
	s.True(errors.Is(s.subscribers.Delete(s.ctx, list[0].ID), gorm.ErrRecordNotFound))
}

func (s *RepositoryTestSuite) TestGallery_CRUD() {
	desc := "sunset"
	item := &domain.GalleryItem{Title: "Beach", Description: &desc, ImageURL: "https://cdn.example.com/g/1.png"}
	s.Require().NoError(s.gallery.Create(s.ctx, item))

	items, err := s.gallery.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Beach", items[0].Title)

	s.Require().NoError(s.gallery.Delete(s.ctx, item.ID))
	_, err = s.gallery.FindByID(s.ctx, item.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *RepositoryTestSuite) TestCredentials_RegisterAndProfile() {
	id := uuid.NewString()
	cred := &domain.Credential{UserID: id, Email: "yuri@example.com", PasswordHash: "hash"}
	profile := &domain.UserProfile{ID: id, Name: "Yuri", Email: "yuri@example.com"}
	s.Require().NoError(s.credentials.Register(s.ctx, cred, profile))

	dup := &domain.Credential{UserID: uuid.NewString(), Email: "yuri@example.com", PasswordHash: "x"}
	err := s.credentials.Register(s.ctx, dup, &domain.UserProfile{ID: dup.UserID, Email: dup.Email})
	s.True(errors.Is(err, ErrDuplicate), "got %v", err)

	// failed registration leaves no profile behind
	_, err = s.profiles.FindByID(s.ctx, dup.UserID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))

	found, err := s.credentials.FindByEmail(s.ctx, "yuri@example.com")
	s.Require().NoError(err)
	s.Equal(id, found.UserID)

	s.Require().NoError(s.credentials.UpdatePassword(s.ctx, id, "new-hash"))
	found, err = s.credentials.FindByUserID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("new-hash", found.PasswordHash)

	profile.Name = "Yuri K"
	profile.Email = "yk@example.com"
	s.Require().NoError(s.profiles.Update(s.ctx, profile))

	_, err = s.credentials.FindByEmail(s.ctx, "yk@example.com")
	s.NoError(err, "credential email follows profile email")

	s.Require().NoError(s.profiles.UpdateAvatar(s.ctx, id, "https://cdn.example.com/avatars/a.png"))
	got, err := s.profiles.FindByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("Yuri K", got.Name)
	s.Require().NotNil(got.AvatarURL)
	s.Equal("https://cdn.example.com/avatars/a.png", *got.AvatarURL)
}

func TestIsDuplicateKey(t *testing.T) {
	if !isDuplicateKey(gorm.ErrDuplicatedKey) {
		t.Error("gorm.ErrDuplicatedKey should be duplicate")
	}
	if !isDuplicateKey(errors.New("UNIQUE constraint failed: newsletter_subscribers.email")) {
		t.Error("sqlite message should be duplicate")
	}
	if isDuplicateKey(errors.New("connection refused")) {
		t.Error("unrelated error is not duplicate")
	}
	if translateWriteError(nil) != nil {
		t.Error("nil stays nil")
	}
}

package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yuriblog/blog-backend/internal/config"
	"github.com/yuriblog/blog-backend/internal/handler"
	"github.com/yuriblog/blog-backend/internal/middleware"
	"github.com/yuriblog/blog-backend/pkg/jwt"
)

// Handlers bundles every HTTP handler the router mounts
type Handlers struct {
	Post       *handler.PostHandler
	Comment    *handler.CommentHandler
	Gallery    *handler.GalleryHandler
	Newsletter *handler.NewsletterHandler
	Auth       *handler.AuthHandler
	Profile    *handler.ProfileHandler
	Upload     *handler.UploadHandler
}

// uploadBodyLimit leaves room for form fields around a 5MB image
const uploadBodyLimit = 6 << 20

// Setup configures all API routes.
// redisClient may be nil, which disables rate limiting.
func Setup(router *gin.Engine, h Handlers, jwtManager *jwt.Manager, cfg *config.Config, redisClient *redis.Client) {
	limiter := writeLimiter(cfg, redisClient)
	auth := middleware.JWTAuth(jwtManager)
	uploads := middleware.MaxBodySize(uploadBodyLimit)

	api := router.Group("/api")

	// Public site
	api.GET("/posts", h.Post.ListPosts)
	api.GET("/posts/:id", h.Post.GetPost)
	api.GET("/posts/:id/comments", h.Comment.ListComments)
	api.POST("/posts/:id/comments", limiter, auth, h.Comment.CreateComment)
	api.GET("/gallery", h.Gallery.ListGallery)
	api.POST("/newsletter/subscribe", limiter, h.Newsletter.Subscribe)

	// Accounts
	authGroup := api.Group("/auth")
	authGroup.POST("/register", limiter, h.Auth.Register)
	authGroup.POST("/login", limiter, h.Auth.Login)
	authGroup.POST("/logout", auth, h.Auth.Logout)

	me := api.Group("/me", auth)
	me.GET("", h.Profile.GetMe)
	me.PUT("", h.Profile.UpdateMe)
	me.PUT("/password", h.Auth.UpdatePassword)
	me.POST("/avatar", uploads, h.Profile.UploadAvatar)
	me.GET("/comments", h.Comment.MyComments)

	// Admin console
	api.POST("/admin/login", limiter, h.Auth.AdminLogin)
	api.POST("/admin/newsletter/send",
		middleware.NewsletterAuth(jwtManager, cfg.Newsletter.AdminToken, cfg.Admin.Email),
		h.Newsletter.Send)

	admin := api.Group("/admin", auth, middleware.RequireAdmin(cfg.Admin.Email))
	{
		admin.GET("/posts", h.Post.ListPosts)
		admin.POST("/posts", h.Post.CreatePost)
		admin.PUT("/posts/:id", h.Post.UpdatePost)
		admin.DELETE("/posts/:id", h.Post.DeletePost)

		admin.GET("/subscribers", h.Newsletter.ListSubscribers)
		admin.DELETE("/subscribers/:id", h.Newsletter.DeleteSubscriber)

		admin.GET("/comments", h.Comment.AdminComments)
		admin.POST("/comments/:id/reply", h.Comment.Reply)
		admin.DELETE("/comments/:id", h.Comment.DeleteComment)

		admin.GET("/gallery", h.Gallery.ListGallery)
		admin.POST("/gallery", uploads, h.Gallery.AddImage)
		admin.DELETE("/gallery/:id", h.Gallery.DeleteImage)

		admin.POST("/uploads", uploads, h.Upload.UploadPostImage)
	}
}

func writeLimiter(cfg *config.Config, redisClient *redis.Client) gin.HandlerFunc {
	if !cfg.RateLimit.Enabled {
		redisClient = nil
	}
	rl := middleware.DefaultRateLimitConfig()
	if cfg.RateLimit.Requests > 0 {
		rl.Requests = cfg.RateLimit.Requests
	}
	if cfg.RateLimit.Window > 0 {
		rl.Window = time.Duration(cfg.RateLimit.Window) * time.Second
	}
	return middleware.RateLimit(redisClient, rl)
}

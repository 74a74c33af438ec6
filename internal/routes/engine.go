package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/yuriblog/blog-backend/internal/config"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/internal/handler"
	"github.com/yuriblog/blog-backend/internal/middleware"
	"github.com/yuriblog/blog-backend/internal/repository"
	"github.com/yuriblog/blog-backend/internal/service"
	"github.com/yuriblog/blog-backend/pkg/cache"
	"github.com/yuriblog/blog-backend/pkg/jwt"
	"github.com/yuriblog/blog-backend/pkg/mailer"
	"gorm.io/gorm"
)

// Deps are the external resources the application runs on.
// Redis, Store and Sender may be nil; the features needing them degrade.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Store  service.ObjectStore
	Sender mailer.Sender
}

// NewEngine wires repositories, services and handlers into a gin engine
func NewEngine(deps Deps) *gin.Engine {
	cfg := deps.Config
	cacheService := cache.NewService(deps.Redis)
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// Repositories
	postRepo := repository.NewPostRepository(deps.DB)
	commentRepo := repository.NewCommentRepository(deps.DB)
	subscriberRepo := repository.NewSubscriberRepository(deps.DB)
	galleryRepo := repository.NewGalleryRepository(deps.DB)
	profileRepo := repository.NewProfileRepository(deps.DB)
	credentialRepo := repository.NewCredentialRepository(deps.DB)

	// Services
	media := service.NewMediaService(deps.Store)
	profileCache := service.NewProfileCache(cacheService)
	postService := service.NewPostService(postRepo, cacheService)
	commentService := service.NewCommentService(commentRepo, postRepo, service.AdminIdentity{
		UserID: domain.AdminUserID,
		Email:  cfg.Admin.Email,
		Avatar: service.DefaultAvatarURL(cfg.Admin.Email),
	})
	subscriberService := service.NewSubscriberService(subscriberRepo)
	newsletterService := service.NewNewsletterService(subscriberRepo, deps.Sender, service.NewsletterConfig{
		From:           cfg.Newsletter.From,
		SendTimeout:    cfg.Newsletter.SendTimeout,
		MaxConcurrency: cfg.Newsletter.MaxConcurrency,
	})
	galleryService := service.NewGalleryService(galleryRepo, media, cacheService)
	profileService := service.NewProfileService(profileRepo, media, profileCache, cfg.Admin.Email)
	authService := service.NewAuthService(credentialRepo, profileRepo, jwtManager, profileCache, service.AdminAccount{
		UserID:   domain.AdminUserID,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORS.AllowOrigins)))
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics())
	router.Use(middleware.I18n())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.InputSanitizer())

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "blog-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	Setup(router, Handlers{
		Post:       handler.NewPostHandler(postService),
		Comment:    handler.NewCommentHandler(commentService, profileService),
		Gallery:    handler.NewGalleryHandler(galleryService),
		Newsletter: handler.NewNewsletterHandler(subscriberService, newsletterService),
		Auth:       handler.NewAuthHandler(authService),
		Profile:    handler.NewProfileHandler(profileService),
		Upload:     handler.NewUploadHandler(media),
	}, jwtManager, cfg, deps.Redis)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "not found"}})
	})

	return router
}

func corsConfig(allowOrigins string) cors.Config {
	origins := []string{}
	for _, o := range strings.Split(allowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	return cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining", "Content-Language"},
		MaxAge:           12 * time.Hour,
	}
}

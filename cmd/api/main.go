package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yuriblog/blog-backend/internal/config"
	"github.com/yuriblog/blog-backend/internal/migration"
	"github.com/yuriblog/blog-backend/internal/repository"
	"github.com/yuriblog/blog-backend/internal/routes"
	"github.com/yuriblog/blog-backend/internal/service"
	pkglogger "github.com/yuriblog/blog-backend/pkg/logger"
	"github.com/yuriblog/blog-backend/pkg/mailer"
	pkgredis "github.com/yuriblog/blog-backend/pkg/redis"
	pkgstorage "github.com/yuriblog/blog-backend/pkg/storage"
	gormlogger "gorm.io/gorm/logger"
)

// @title           Blog Backend API
// @version         1.0
// @description     Personal blog: posts, threaded comments, gallery and newsletter
//
// @host            localhost:8080
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	// Configuration
	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Database
	logLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		logLevel = gormlogger.Info
	}
	db, err := repository.Open(cfg.Database, logLevel)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	pkglogger.Info("Connected to %s", cfg.Database.Driver)
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Redis
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	// Object storage
	var store service.ObjectStore
	if cfg.Storage.Enabled {
		s3Client, err := pkgstorage.NewS3Client(pkgstorage.S3Config{
			Endpoint:        cfg.Storage.Endpoint,
			Region:          cfg.Storage.Region,
			AccessKeyID:     cfg.Storage.AccessKeyID,
			SecretAccessKey: cfg.Storage.SecretAccessKey,
			Bucket:          cfg.Storage.Bucket,
			CDNURL:          cfg.Storage.CDNURL,
			BasePath:        cfg.Storage.BasePath,
			ForcePathStyle:  cfg.Storage.ForcePathStyle,
		})
		if err != nil {
			pkglogger.Warn("S3 storage disabled: %v", err)
		} else {
			store = s3Client
			pkglogger.Info("S3 storage initialized (bucket=%s)", cfg.Storage.Bucket)
		}
	}

	// Email
	var sender mailer.Sender
	if m := mailer.NewResendMailer(cfg.Newsletter.ResendAPIKey); m != nil {
		sender = m
	} else {
		pkglogger.Warn("RESEND_API_KEY not set, newsletter sending disabled")
	}

	router := routes.NewEngine(routes.Deps{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Store:  store,
		Sender: sender,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	pkglogger "github.com/yuriblog/blog-backend/pkg/logger"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	CORS       CORSConfig       `yaml:"cors"`
	Storage    StorageConfig    `yaml:"storage"`
	Admin      AdminConfig      `yaml:"admin"`
	Newsletter NewsletterConfig `yaml:"newsletter"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	Driver          string `yaml:"driver"` // postgres | mysql
	DSN             string `yaml:"dsn"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"dbname"`
	SSLMode         string `yaml:"sslmode"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // minutes
}

type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

type StorageConfig struct {
	Enabled         bool   `yaml:"enabled"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	CDNURL          string `yaml:"cdn_url"`
	BasePath        string `yaml:"base_path"`
	ForcePathStyle  bool   `yaml:"force_path_style"`
}

// AdminConfig identifies the single administrator account
type AdminConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type NewsletterConfig struct {
	ResendAPIKey   string        `yaml:"resend_api_key"`
	From           string        `yaml:"from"`
	AdminToken     string        `yaml:"admin_token"`
	SendTimeout    time.Duration `yaml:"send_timeout"`
	MaxConcurrency int           `yaml:"max_concurrency"` // 0 = one goroutine per subscriber
}

type RateLimitConfig struct {
	Enabled  bool `yaml:"enabled"`
	Requests int  `yaml:"requests"`
	Window   int  `yaml:"window"` // seconds
}

// Load reads the YAML file at path and applies environment overrides.
// A missing file is not an error; defaults plus env are used.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		pkglogger.Warn("config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	applyEnv(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required (set JWT_SECRET)")
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Env: "local"},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxIdleConns:    5,
			MaxOpenConns:    20,
			ConnMaxLifetime: 300,
		},
		Redis:     RedisConfig{Host: "localhost", Port: 6379, PoolSize: 10},
		JWT:       JWTConfig{ExpiresIn: 1440},
		CORS:      CORSConfig{AllowOrigins: "http://localhost:3000"},
		Storage:   StorageConfig{Region: "us-east-1"},
		RateLimit: RateLimitConfig{Enabled: true, Requests: 30, Window: 60},
		Newsletter: NewsletterConfig{
			From:        "Yuri <onboarding@resend.dev>",
			SendTimeout: 15 * time.Second,
		},
	}
}

// applyEnv lets secrets live outside the YAML file.
func applyEnv(cfg *Config) {
	setString(&cfg.Server.Env, "APP_ENV")
	setInt(&cfg.Server.Port, "PORT")

	setString(&cfg.Database.Driver, "DATABASE_DRIVER")
	setString(&cfg.Database.DSN, "DATABASE_DSN")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")

	setString(&cfg.JWT.Secret, "JWT_SECRET")
	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")

	setString(&cfg.Storage.Endpoint, "S3_ENDPOINT")
	setString(&cfg.Storage.Region, "S3_REGION")
	setString(&cfg.Storage.AccessKeyID, "S3_ACCESS_KEY_ID")
	setString(&cfg.Storage.SecretAccessKey, "S3_SECRET_ACCESS_KEY")
	setString(&cfg.Storage.Bucket, "S3_BUCKET")
	setString(&cfg.Storage.CDNURL, "S3_CDN_URL")
	if cfg.Storage.Bucket != "" && os.Getenv("S3_BUCKET") != "" {
		cfg.Storage.Enabled = true
	}

	setString(&cfg.Admin.Email, "ADMIN_EMAIL")
	setString(&cfg.Admin.Password, "ADMIN_PASSWORD")

	setString(&cfg.Newsletter.ResendAPIKey, "RESEND_API_KEY")
	setString(&cfg.Newsletter.From, "NEWSLETTER_FROM")
	setString(&cfg.Newsletter.AdminToken, "NEWSLETTER_ADMIN_TOKEN")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// IsDevelopment reports whether the server runs in a local/dev environment
func (c *Config) IsDevelopment() bool {
	switch c.Server.Env {
	case "", "local", "dev", "development":
		return true
	}
	return false
}

// GetDSN returns the configured DSN or builds one for the selected driver
func (d *DatabaseConfig) GetDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Driver == "mysql" {
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			d.User, d.Password, d.Host, d.Port, d.DBName)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogResolved prints the effective config with secrets masked
func LogResolved(cfg *Config) {
	pkglogger.Info("config: env=%s port=%d db=%s@%s:%d/%s redis=%s:%d",
		cfg.Server.Env, cfg.Server.Port, cfg.Database.Driver, cfg.Database.Host, cfg.Database.Port,
		cfg.Database.DBName, cfg.Redis.Host, cfg.Redis.Port)
	pkglogger.Info("config: storage=%v bucket=%s newsletter=%v admin=%s",
		cfg.Storage.Enabled, cfg.Storage.Bucket, cfg.Newsletter.ResendAPIKey != "", mask(cfg.Admin.Email))
}

func mask(s string) string {
	if len(s) <= 3 {
		return "***"
	}
	return s[:3] + "***"
}

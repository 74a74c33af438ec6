package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned by reads when no Redis client is configured
var ErrUnavailable = errors.New("redis not available")

// TTLs
const (
	TTLSession = 30 * time.Minute // 세션별 프로필
	TTLPosts   = 30 * time.Second // 공개 게시글 목록
	TTLGallery = 2 * time.Minute  // 갤러리
)

// Key prefixes
const (
	PrefixSession = "session:"
	PrefixPosts   = "posts:"
	PrefixGallery = "gallery:"
)

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// 세션 캐시
	GetSession(ctx context.Context, sessionID string) ([]byte, error)
	SetSession(ctx context.Context, sessionID string, data interface{}) error
	DeleteSession(ctx context.Context, sessionID string) error
	ExtendSession(ctx context.Context, sessionID string) error

	// 공개 목록 캐시
	GetPosts(ctx context.Context) ([]byte, error)
	SetPosts(ctx context.Context, data interface{}) error
	InvalidatePosts(ctx context.Context) error
	GetGallery(ctx context.Context) ([]byte, error)
	SetGallery(ctx context.Context, data interface{}) error
	InvalidateGallery(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service. A nil client yields a no-op cache whose reads miss.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.getBytes(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// ========================================
// 세션 캐시
// ========================================

func (c *redisCache) sessionKey(sessionID string) string {
	return PrefixSession + sessionID
}

func (c *redisCache) GetSession(ctx context.Context, sessionID string) ([]byte, error) {
	return c.getBytes(ctx, c.sessionKey(sessionID))
}

func (c *redisCache) SetSession(ctx context.Context, sessionID string, data interface{}) error {
	return c.Set(ctx, c.sessionKey(sessionID), data, TTLSession)
}

func (c *redisCache) DeleteSession(ctx context.Context, sessionID string) error {
	return c.Delete(ctx, c.sessionKey(sessionID))
}

func (c *redisCache) ExtendSession(ctx context.Context, sessionID string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Expire(ctx, c.sessionKey(sessionID), TTLSession).Err()
}

// ========================================
// 게시글 / 갤러리 목록 캐시
// ========================================

func (c *redisCache) GetPosts(ctx context.Context) ([]byte, error) {
	return c.getBytes(ctx, PrefixPosts+"all")
}

func (c *redisCache) SetPosts(ctx context.Context, data interface{}) error {
	return c.Set(ctx, PrefixPosts+"all", data, TTLPosts)
}

func (c *redisCache) InvalidatePosts(ctx context.Context) error {
	return c.Delete(ctx, PrefixPosts+"all")
}

func (c *redisCache) GetGallery(ctx context.Context) ([]byte, error) {
	return c.getBytes(ctx, PrefixGallery+"all")
}

func (c *redisCache) SetGallery(ctx context.Context, data interface{}) error {
	return c.Set(ctx, PrefixGallery+"all", data, TTLGallery)
}

func (c *redisCache) InvalidateGallery(ctx context.Context) error {
	return c.Delete(ctx, PrefixGallery+"all")
}

func (c *redisCache) getBytes(ctx context.Context, key string) ([]byte, error) {
	if c.client == nil {
		return nil, ErrUnavailable
	}
	return c.client.Get(ctx, key).Bytes()
}

package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yuriblog/blog-backend/internal/common"
	"github.com/yuriblog/blog-backend/pkg/i18n"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	Requests  int
	Window    time.Duration
	KeyPrefix string
}

// DefaultRateLimitConfig returns default rate limit configuration
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Requests:  30,
		Window:    time.Minute,
		KeyPrefix: "blog:ratelimit:",
	}
}

// rateLimitScript is an atomic Lua script for sliding window rate limiting
var rateLimitScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local window_start = now - window

redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)
local count = redis.call('ZCARD', key)

if count < limit then
    redis.call('ZADD', key, now, now .. ':' .. math.random(1000000))
    redis.call('EXPIRE', key, math.ceil(window / 1000) + 1)
    return {1, limit - count - 1, 0}
else
    local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
    local reset_at = 0
    if #oldest >= 2 then
        reset_at = tonumber(oldest[2]) + window
    end
    return {0, 0, reset_at}
end
`)

// RateLimit limits write endpoints per client IP and route.
// Without Redis, or when Redis errors, requests pass.
func RateLimit(redisClient *redis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if redisClient == nil || cfg.Requests <= 0 {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + c.FullPath() + ":" + c.ClientIP()
		now := time.Now().UnixMilli()
		windowMs := cfg.Window.Milliseconds()

		result, err := rateLimitScript.Run(c.Request.Context(), redisClient, []string{key},
			cfg.Requests, windowMs, now,
		).Int64Slice()
		if err != nil {
			c.Next()
			return
		}

		allowed := result[0] == 1
		remaining := result[1]
		resetAt := result[2]

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Requests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if !allowed {
			retryAfter := (resetAt - now) / 1000
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			common.ErrorResponse(c, http.StatusTooManyRequests, i18n.T(GetLocale(c), i18n.ErrTooMany), nil)
			return
		}

		c.Next()
	}
}

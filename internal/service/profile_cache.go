package service

import (
	"context"
	"encoding/json"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/yuriblog/blog-backend/internal/domain"
	"github.com/yuriblog/blog-backend/pkg/cache"
)

const localProfileCacheSize = 1024

// ProfileCache holds the profile of each signed-in session so
// repeated requests skip the profile lookup. Entries are per session,
// never per user, and are cleared on logout.
type ProfileCache interface {
	Get(ctx context.Context, sessionID string) (*domain.UserProfile, bool)
	Set(ctx context.Context, sessionID string, profile *domain.UserProfile)
	Clear(ctx context.Context, sessionID string)
}

// NewProfileCache uses Redis when available and an in-process
// expiring LRU otherwise.
func NewProfileCache(cacheService cache.Service) ProfileCache {
	if cacheService != nil && cacheService.IsAvailable() {
		return &redisProfileCache{cache: cacheService}
	}
	return newLocalProfileCache(localProfileCacheSize)
}

type redisProfileCache struct {
	cache cache.Service
}

func (c *redisProfileCache) Get(ctx context.Context, sessionID string) (*domain.UserProfile, bool) {
	data, err := c.cache.GetSession(ctx, sessionID)
	if err != nil {
		return nil, false
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, false
	}
	_ = c.cache.ExtendSession(ctx, sessionID)
	return &profile, true
}

func (c *redisProfileCache) Set(ctx context.Context, sessionID string, profile *domain.UserProfile) {
	_ = c.cache.SetSession(ctx, sessionID, profile)
}

func (c *redisProfileCache) Clear(ctx context.Context, sessionID string) {
	_ = c.cache.DeleteSession(ctx, sessionID)
}

type localProfileCache struct {
	lru *expirable.LRU[string, domain.UserProfile]
}

func newLocalProfileCache(size int) *localProfileCache {
	return &localProfileCache{
		lru: expirable.NewLRU[string, domain.UserProfile](size, nil, cache.TTLSession),
	}
}

// Values are stored by value so callers cannot mutate cached entries.
func (c *localProfileCache) Get(_ context.Context, sessionID string) (*domain.UserProfile, bool) {
	profile, ok := c.lru.Get(sessionID)
	if !ok {
		return nil, false
	}
	return &profile, true
}

func (c *localProfileCache) Set(_ context.Context, sessionID string, profile *domain.UserProfile) {
	if profile == nil {
		return
	}
	c.lru.Add(sessionID, *profile)
}

func (c *localProfileCache) Clear(_ context.Context, sessionID string) {
	c.lru.Remove(sessionID)
}

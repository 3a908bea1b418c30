package service

import (
	"context"
	"time"

	"taskhub/internal/core/cache"
)

const emailsCacheKey = "users:emails"
const emailsCacheTTL = 30 * time.Second

// EmailRosterCache is a thin optional wrapper over the redis cache for the
// all-emails listing. A nil receiver degrades to direct reads.
type EmailRosterCache struct {
	c *cache.Cache
}

func NewEmailRosterCache(c *cache.Cache) *EmailRosterCache {
	if c == nil {
		return nil
	}
	return &EmailRosterCache{c: c}
}

func (r *EmailRosterCache) GetOrLoad(ctx context.Context, load func(context.Context) (*[]string, error)) (*[]string, error) {
	if r == nil {
		return load(ctx)
	}
	return cache.GetOrLoadJSON[[]string](r.c, ctx, emailsCacheKey, emailsCacheTTL, load)
}

func (r *EmailRosterCache) Invalidate(ctx context.Context) {
	if r == nil {
		return
	}
	r.c.Invalidate(ctx, emailsCacheKey)
}

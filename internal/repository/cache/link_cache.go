// Package cache adds an optional redis read-through layer in front of the
// link repository. Links are immutable once their code is assigned, so
// cached entries never need invalidation.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"shortlink/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	linkCachePrefix = "link:"
	linkCacheTTL    = 10 * time.Minute
)

// LinkCache stores code->link lookups. Implementations handle misses
// gracefully by returning nil, nil.
type LinkCache interface {
	// Get returns nil, nil on a cache miss.
	Get(ctx context.Context, code string) (*domain.Link, error)

	// Set stores a link under its short code.
	Set(ctx context.Context, link *domain.Link) error
}

var (
	_ LinkCache = (*RedisLinkCache)(nil)
	_ LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements LinkCache on redis.
type RedisLinkCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

// NewRedisLinkCache creates a redis-backed cache, or a no-op cache when the
// client is nil.
func NewRedisLinkCache(rdb *redis.Client, logger *zap.Logger) LinkCache {
	if rdb == nil {
		return &noopLinkCache{}
	}
	return &RedisLinkCache{rdb: rdb, logger: logger}
}

// cachedLink is the serialization format for cached links.
type cachedLink struct {
	ID        int64     `json:"id"`
	ShortCode string    `json:"short_code"`
	TargetURL string    `json:"target_url"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *RedisLinkCache) key(code string) string {
	return linkCachePrefix + code
}

// Get retrieves a cached link. Redis errors degrade to a miss.
func (c *RedisLinkCache) Get(ctx context.Context, code string) (*domain.Link, error) {
	data, err := c.rdb.Get(ctx, c.key(code)).Bytes()
	if err != nil {
		return nil, nil
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.Warn("failed to unmarshal cached link", zap.String("code", code), zap.Error(err))
		return nil, nil
	}

	return &domain.Link{
		ID:        cached.ID,
		ShortCode: cached.ShortCode,
		TargetURL: cached.TargetURL,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// Set stores a link. Failures are logged, never surfaced: the cache is an
// optimization, the store stays authoritative.
func (c *RedisLinkCache) Set(ctx context.Context, link *domain.Link) error {
	data, err := json.Marshal(cachedLink{
		ID:        link.ID,
		ShortCode: link.ShortCode,
		TargetURL: link.TargetURL,
		CreatedAt: link.CreatedAt,
	})
	if err != nil {
		c.logger.Warn("failed to marshal link for cache", zap.String("code", link.ShortCode), zap.Error(err))
		return nil
	}

	if err := c.rdb.Set(ctx, c.key(link.ShortCode), data, linkCacheTTL).Err(); err != nil {
		c.logger.Warn("failed to cache link", zap.String("code", link.ShortCode), zap.Error(err))
	}
	return nil
}

// noopLinkCache is used when no redis address is configured.
type noopLinkCache struct{}

func (noopLinkCache) Get(context.Context, string) (*domain.Link, error) { return nil, nil }
func (noopLinkCache) Set(context.Context, *domain.Link) error           { return nil }

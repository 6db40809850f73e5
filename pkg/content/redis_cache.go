package content

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chiclang/chicweb/pkg/logger"
)

// DefaultRedisPrefix namespaces cache keys in a shared redis database.
const DefaultRedisPrefix = "chicweb:content:"

// RedisCache stores documents as JSON in redis so several instances share
// one parsed-content cache.
type RedisCache struct {
	db            redis.UniversalClient
	prefix        string
	ttl           time.Duration
	scanBatchSize int64
	log           *slog.Logger
}

// RedisCacheOption configures RedisCache.
type RedisCacheOption func(*RedisCache)

// WithRedisPrefix replaces DefaultRedisPrefix.
func WithRedisPrefix(prefix string) RedisCacheOption {
	return func(c *RedisCache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithRedisTTL sets the expiry of stored documents. Zero means no expiration.
func WithRedisTTL(ttl time.Duration) RedisCacheOption {
	return func(c *RedisCache) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

// WithRedisScanBatchSize sets the SCAN count hint used by Purge.
func WithRedisScanBatchSize(n int) RedisCacheOption {
	return func(c *RedisCache) {
		if n > 0 {
			c.scanBatchSize = int64(n)
		}
	}
}

// WithRedisLogger sets the logger for redis failures. Failures never reach
// the caller of Get or Set: a broken cache degrades to a miss.
func WithRedisLogger(l *slog.Logger) RedisCacheOption {
	return func(c *RedisCache) {
		if l != nil {
			c.log = l
		}
	}
}

// NewRedisCache wraps a redis client as a document cache.
func NewRedisCache(db redis.UniversalClient, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		db:            db,
		prefix:        DefaultRedisPrefix,
		scanBatchSize: 1000,
		log:           slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Document, bool) {
	if key == "" {
		return nil, false
	}

	val, err := c.db.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WarnContext(ctx, "content cache read failed",
				slog.String("key", key),
				logger.Error(err),
			)
		}
		return nil, false
	}

	var doc Document
	if err := json.Unmarshal(val, &doc); err != nil {
		c.log.WarnContext(ctx, "content cache entry dropped",
			slog.String("key", key),
			logger.Error(errors.Join(ErrCacheEntryMalformed, err)),
		)
		_ = c.db.Del(ctx, c.prefix+key).Err()
		return nil, false
	}
	return &doc, true
}

func (c *RedisCache) Set(ctx context.Context, key string, doc *Document) {
	if key == "" || doc == nil {
		return
	}

	val, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := c.db.Set(ctx, c.prefix+key, val, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "content cache write failed",
			slog.String("key", key),
			logger.Error(err),
		)
	}
}

// Purge deletes every key under the cache prefix using SCAN so redis is
// never blocked.
func (c *RedisCache) Purge(ctx context.Context) error {
	var cursor uint64
	for {
		batch, next, err := c.db.Scan(ctx, cursor, c.prefix+"*", c.scanBatchSize).Result()
		if err != nil {
			return errors.Join(ErrFailedToPurgeCache, err)
		}
		if len(batch) > 0 {
			if err := c.db.Del(ctx, batch...).Err(); err != nil {
				return errors.Join(ErrFailedToPurgeCache, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

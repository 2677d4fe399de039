package repositories

import (
	"context"
	"time"
)

// CacheRepository is the subset of the Redis cache service the repositories
// read through. A nil CacheRepository disables caching.
type CacheRepository interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteMatching(ctx context.Context, pattern string) error
}

package contracts

import (
	"context"
	"time"
)

// RedisRepository backs the run lock and the tenant token cache.
// Get returns an empty string for a missing key.
type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error

	// lock primitives
	TrySetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	CompareAndDelete(ctx context.Context, key, owner string) (bool, error)
}

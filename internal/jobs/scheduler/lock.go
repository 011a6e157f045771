package scheduler

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker claims an execution window
type Locker interface {
	TryLock(ctx context.Context, key, owner string, ttl time.Duration) (bool, error)
}

// SetNXClient is the subset of the Redis client used for locking
type SetNXClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisLocker claims windows with SET NX so only one instance wins each one
type RedisLocker struct {
	client SetNXClient
}

// NewRedisLocker creates a Redis backed locker
func NewRedisLocker(client SetNXClient) *RedisLocker {
	return &RedisLocker{client: client}
}

// TryLock reports whether this caller claimed key
func (l *RedisLocker) TryLock(ctx context.Context, key, owner string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, owner, ttl).Result()
}

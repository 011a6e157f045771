package editor

import (
	"context"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
)

// TokenKey holds the admin session token in a KVStore
const TokenKey = "adminToken"

// KVStore is the small persistent key/value store the editor keeps its
// session token and last good documents in.
type KVStore interface {
	// Get reports false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CacheStore adapts a cache.Cache into a KVStore. Entries never expire.
type CacheStore struct {
	cache  cache.Cache
	prefix string
}

// NewCacheStore wraps c, namespacing every key with prefix
func NewCacheStore(c cache.Cache, prefix string) *CacheStore {
	return &CacheStore{cache: c, prefix: prefix}
}

// NewMemoryStore returns a process-local store
func NewMemoryStore() *CacheStore {
	return NewCacheStore(cache.NewMemoryCache(), "")
}

// NewRedisStore returns a store kept in Redis under prefix
func NewRedisStore(client cache.RedisClient, prefix string) *CacheStore {
	return NewCacheStore(cache.NewRedisCache(client), prefix)
}

func (s *CacheStore) Get(ctx context.Context, key string) (string, bool, error) {
	return s.cache.Get(ctx, s.prefix+key)
}

func (s *CacheStore) Set(ctx context.Context, key, value string) error {
	return s.cache.Set(ctx, s.prefix+key, value, 0)
}

func (s *CacheStore) Delete(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, s.prefix+key)
}

// TokenSource yields the bearer token for admin requests, "" when signed out
type TokenSource func(ctx context.Context) (string, error)

// StoredToken reads the token saved by HTTPAuth
func StoredToken(store KVStore) TokenSource {
	return func(ctx context.Context) (string, error) {
		token, _, err := store.Get(ctx, TokenKey)
		return token, err
	}
}

// StaticToken always yields token
func StaticToken(token string) TokenSource {
	return func(context.Context) (string, error) {
		return token, nil
	}
}

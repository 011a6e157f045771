package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
)

// MockRedisClient is an in-memory cache.RedisClient for unit tests
type MockRedisClient struct {
	mu       sync.RWMutex
	data     map[string]string
	expiries map[string]time.Time

	// Callbacks for testing
	OnSet func(key, value string, expiration time.Duration) error
	OnGet func(key string) (string, error)
	OnDel func(keys ...string) error
}

var _ cache.RedisClient = (*MockRedisClient)(nil)

// NewMockRedisClient creates a new mock Redis client
func NewMockRedisClient() *MockRedisClient {
	return &MockRedisClient{
		data:     make(map[string]string),
		expiries: make(map[string]time.Time),
	}
}

// Get gets a value by key
func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.OnGet != nil {
		val, err := m.OnGet(key)
		return redis.NewStringResult(val, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.expiredLocked(key) {
		return redis.NewStringResult("", redis.Nil)
	}
	val, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

// Set sets a key-value pair
func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	str := fmt.Sprint(value)
	if m.OnSet != nil {
		if err := m.OnSet(key, str, expiration); err != nil {
			return redis.NewStatusResult("", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = str
	if expiration > 0 {
		m.expiries[key] = time.Now().Add(expiration)
	} else {
		delete(m.expiries, key)
	}
	return redis.NewStatusResult("OK", nil)
}

// Del deletes keys
func (m *MockRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	if m.OnDel != nil {
		if err := m.OnDel(keys...); err != nil {
			return redis.NewIntResult(0, err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for _, key := range keys {
		if _, ok := m.data[key]; ok {
			n++
		}
		delete(m.data, key)
		delete(m.expiries, key)
	}
	return redis.NewIntResult(n, nil)
}

// TTL returns the remaining lifetime of a key, or 0 when it has none
func (m *MockRedisClient) TTL(key string) time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	exp, ok := m.expiries[key]
	if !ok {
		return 0
	}
	return time.Until(exp)
}

// Keys returns the number of stored keys, expired ones included
func (m *MockRedisClient) Keys() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MockRedisClient) expiredLocked(key string) bool {
	exp, ok := m.expiries[key]
	if !ok || time.Now().Before(exp) {
		return false
	}
	delete(m.data, key)
	delete(m.expiries, key)
	return true
}

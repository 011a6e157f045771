// Package resilience holds the request throttling used on the public write
// endpoints.
package resilience

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// RateLimiterConfig holds rate limiter configuration
type RateLimiterConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Rate      int           `mapstructure:"rate"`       // requests per period
	Period    time.Duration `mapstructure:"period"`     // time period
	BurstSize int           `mapstructure:"burst_size"` // max burst
	// IdleTTL drops the bucket of a client that has been quiet this long
	IdleTTL time.Duration `mapstructure:"idle_ttl"`
}

// DefaultRateLimiterConfig returns default configuration
func DefaultRateLimiterConfig() *RateLimiterConfig {
	return &RateLimiterConfig{
		Enabled:   true,
		Rate:      10,
		Period:    time.Minute,
		BurstSize: 5,
		IdleTTL:   10 * time.Minute,
	}
}

// TokenBucketLimiter is a token bucket driven by an explicit clock
type TokenBucketLimiter struct {
	limiter *rate.Limiter
}

// NewTokenBucketLimiter creates a full bucket
func NewTokenBucketLimiter(config *RateLimiterConfig, now time.Time) *TokenBucketLimiter {
	limit := rate.Limit(0)
	if config.Rate > 0 && config.Period > 0 {
		limit = rate.Every(config.Period / time.Duration(config.Rate))
	}
	limiter := rate.NewLimiter(limit, config.BurstSize)
	// start the full bucket at now
	limiter.SetBurstAt(now, config.BurstSize)
	return &TokenBucketLimiter{limiter: limiter}
}

// Allow takes one token. When the bucket is empty it returns how long until
// the next token is available.
func (l *TokenBucketLimiter) Allow(now time.Time) (bool, time.Duration) {
	r := l.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, rate.InfDuration
	}
	delay := r.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	r.CancelAt(now)
	return false, delay
}

// full reports whether the bucket has refilled completely
func (l *TokenBucketLimiter) full(now time.Time) bool {
	return l.limiter.TokensAt(now) >= float64(l.limiter.Burst())
}

// RateLimiterMetrics holds rate limiter counters
type RateLimiterMetrics struct {
	AllowedRequests  int64
	RejectedRequests int64
	TrackedKeys      int
}

type keyedBucket struct {
	limiter  *TokenBucketLimiter
	lastSeen time.Time
}

// KeyedLimiter keeps one token bucket per key, e.g. per client address
type KeyedLimiter struct {
	config *RateLimiterConfig
	now    func() time.Time

	mutex     sync.Mutex
	buckets   map[string]*keyedBucket
	lastSweep time.Time
	allowed   int64
	rejected  int64
}

// NewKeyedLimiter creates a limiter; a disabled config allows everything
func NewKeyedLimiter(config *RateLimiterConfig) *KeyedLimiter {
	return &KeyedLimiter{
		config:  config,
		now:     time.Now,
		buckets: make(map[string]*keyedBucket),
	}
}

// Enabled reports whether requests are being limited
func (k *KeyedLimiter) Enabled() bool {
	return k.config.Enabled && k.config.Rate > 0 && k.config.BurstSize > 0
}

// Allow takes a token from key's bucket. A rejection carries the time until
// the next token.
func (k *KeyedLimiter) Allow(key string) (bool, time.Duration) {
	if !k.Enabled() {
		return true, 0
	}
	now := k.now()

	k.mutex.Lock()
	k.sweepLocked(now)
	b, ok := k.buckets[key]
	if !ok {
		b = &keyedBucket{limiter: NewTokenBucketLimiter(k.config, now)}
		k.buckets[key] = b
	}
	b.lastSeen = now
	k.mutex.Unlock()

	allowed, retryAfter := b.limiter.Allow(now)

	k.mutex.Lock()
	if allowed {
		k.allowed++
	} else {
		k.rejected++
	}
	k.mutex.Unlock()
	return allowed, retryAfter
}

// sweepLocked drops idle buckets that have refilled, at most once per IdleTTL
func (k *KeyedLimiter) sweepLocked(now time.Time) {
	ttl := k.config.IdleTTL
	if ttl <= 0 || now.Sub(k.lastSweep) < ttl {
		return
	}
	k.lastSweep = now
	for key, b := range k.buckets {
		if now.Sub(b.lastSeen) >= ttl && b.limiter.full(now) {
			delete(k.buckets, key)
		}
	}
}

// Metrics returns current counters
func (k *KeyedLimiter) Metrics() RateLimiterMetrics {
	k.mutex.Lock()
	defer k.mutex.Unlock()
	return RateLimiterMetrics{
		AllowedRequests:  k.allowed,
		RejectedRequests: k.rejected,
		TrackedKeys:      len(k.buckets),
	}
}

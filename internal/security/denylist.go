package security

import (
	"context"
	"time"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
)

const denylistPrefix = "referme:revoked:"

// TokenDenylist records revoked token ids until the token would have
// expired anyway.
type TokenDenylist struct {
	cache cache.Cache
}

// NewTokenDenylist creates a denylist stored in c
func NewTokenDenylist(c cache.Cache) *TokenDenylist {
	return &TokenDenylist{cache: c}
}

// Revoke marks the token id as revoked
func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return d.cache.Set(ctx, denylistPrefix+tokenID, "1", ttl)
}

// IsRevoked reports whether the token id was revoked
func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, ok, err := d.cache.Get(ctx, denylistPrefix+tokenID)
	return ok, err
}

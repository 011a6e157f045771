// Package impl provides repository implementations that delegate to the DAO layer.
package impl

import (
	"context"
	"errors"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
)

// CacheOptions configures the document cache
type CacheOptions struct {
	Prefix string
	TTL    time.Duration
}

// contentRepository implements repository.ContentRepository with a
// cache-aside layer in front of ContentDocumentDAO. Cache failures are
// logged and fall through to the DAO.
type contentRepository struct {
	dao    dao.ContentDocumentDAO
	cache  cache.Cache
	opts   CacheOptions
	logger *zap.Logger
}

// NewContentRepository creates a new ContentRepository instance.
func NewContentRepository(d dao.ContentDocumentDAO, c cache.Cache, opts CacheOptions, logger *zap.Logger) repository.ContentRepository {
	return &contentRepository{dao: d, cache: c, opts: opts, logger: logger}
}

type cachedDocument struct {
	Version   int64     `json:"version"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *contentRepository) key(domain string) string {
	return r.opts.Prefix + domain
}

// Get returns the document for a domain, reading through the cache.
func (r *contentRepository) Get(ctx context.Context, domain string) (*entity.ContentDocument, error) {
	if raw, ok, err := r.cache.Get(ctx, r.key(domain)); err != nil {
		r.logger.Warn("content cache read failed", zap.String("domain", domain), zap.Error(err))
	} else if ok {
		var cached cachedDocument
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &entity.ContentDocument{
				Key:       domain,
				Payload:   cached.Payload,
				Version:   cached.Version,
				CreatedAt: cached.CreatedAt,
				UpdatedAt: cached.UpdatedAt,
			}, nil
		}
	}

	doc, err := r.dao.FindByKey(ctx, domain)
	if err != nil || doc == nil {
		return doc, err
	}
	r.store(ctx, doc)
	return doc, nil
}

// Save writes through to the DAO and drops the cached copy. The next Get
// reloads it, so writers finishing out of order cannot leave an older
// version cached.
func (r *contentRepository) Save(ctx context.Context, doc *entity.ContentDocument, expectedVersion int64) error {
	err := r.dao.Save(ctx, doc, expectedVersion)
	if err == nil || errors.Is(err, dao.ErrVersionMismatch) {
		r.evict(ctx, doc.Key)
	}
	return err
}

// List returns every stored document straight from the DAO.
func (r *contentRepository) List(ctx context.Context) ([]*entity.ContentDocument, error) {
	return r.dao.FindAll(ctx)
}

func (r *contentRepository) store(ctx context.Context, doc *entity.ContentDocument) {
	raw, err := json.Marshal(cachedDocument{
		Version:   doc.Version,
		Payload:   doc.Payload,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	})
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, r.key(doc.Key), string(raw), r.opts.TTL); err != nil {
		r.logger.Warn("content cache write failed", zap.String("domain", doc.Key), zap.Error(err))
	}
}

func (r *contentRepository) evict(ctx context.Context, domain string) {
	if err := r.cache.Delete(ctx, r.key(domain)); err != nil {
		r.logger.Warn("content cache evict failed", zap.String("domain", domain), zap.Error(err))
	}
}

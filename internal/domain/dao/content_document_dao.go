package dao

import (
	"context"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// ContentDocumentDAO persists singleton content documents keyed by domain.
type ContentDocumentDAO interface {
	// FindByKey returns nil, nil if no document is stored under key.
	FindByKey(ctx context.Context, key string) (*entity.ContentDocument, error)

	// Save writes doc.Payload under doc.Key. With expectedVersion set to
	// AnyVersion the write is unconditional; otherwise the stored version
	// must equal expectedVersion (0 meaning "not stored yet") or
	// ErrVersionMismatch is returned. On success doc.Version holds the new
	// version.
	Save(ctx context.Context, doc *entity.ContentDocument, expectedVersion int64) error

	// FindAll returns every stored document ordered by key.
	FindAll(ctx context.Context) ([]*entity.ContentDocument, error)
}

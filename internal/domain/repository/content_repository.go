package repository

import (
	"context"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// ContentRepository defines the interface for singleton content documents
type ContentRepository interface {
	// Get returns the document for a domain, or nil if none is stored
	Get(ctx context.Context, domain string) (*entity.ContentDocument, error)

	// Save writes a document. expectedVersion follows dao.ContentDocumentDAO.Save.
	Save(ctx context.Context, doc *entity.ContentDocument, expectedVersion int64) error

	// List returns every stored document
	List(ctx context.Context) ([]*entity.ContentDocument, error)
}

// BlogRepository defines the interface for blog post data operations
type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, filter dao.BlogFilter) ([]*entity.BlogPost, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, kind string) ([]*entity.Event, error)
	Count(ctx context.Context) (int64, error)
}

// ContactRepository defines the interface for contact submissions
type ContactRepository interface {
	Create(ctx context.Context, contact *entity.Contact) error
	GetByID(ctx context.Context, id uint) (*entity.Contact, error)
	Delete(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, query string) ([]*entity.Contact, error)
	Count(ctx context.Context) (int64, error)
}

package dao

import (
	"context"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// BlogFilter narrows a blog listing. Empty fields match everything.
type BlogFilter struct {
	Query         string
	Category      string
	PublishedOnly bool
}

// BlogPostDAO extends BaseDAO with blog-specific queries.
type BlogPostDAO interface {
	BaseDAO[entity.BlogPost, string]

	// FindBySlug returns nil, nil if no post has the slug.
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)

	// List returns posts matching filter, newest first.
	List(ctx context.Context, filter BlogFilter) ([]*entity.BlogPost, error)
}

// EventDAO extends BaseDAO with event-specific queries.
type EventDAO interface {
	BaseDAO[entity.Event, string]

	// List returns events of the given kind ordered by date, or all events
	// when kind is empty.
	List(ctx context.Context, kind string) ([]*entity.Event, error)
}

// ContactDAO extends BaseDAO with contact-specific queries.
type ContactDAO interface {
	BaseDAO[entity.Contact, uint]

	// List returns submissions oldest first. A non-empty query keeps only
	// submissions whose name, email, subject or message contain it,
	// ignoring case.
	List(ctx context.Context, query string) ([]*entity.Contact, error)
}

package service

import (
	"context"
	"io"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
)

// BlogQuery filters the blog listing
type BlogQuery struct {
	Query         string
	Category      string
	PublishedOnly bool
}

// BlogService defines the interface for blog post operations
type BlogService interface {
	List(ctx context.Context, query BlogQuery) ([]content.BlogPost, error)
	Get(ctx context.Context, id string) (*content.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*content.BlogPost, error)
	Create(ctx context.Context, req *request.BlogPostRequest) (*content.BlogPost, error)
	Update(ctx context.Context, id string, req *request.BlogPostRequest) (*content.BlogPost, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the interface for webinar and Manthan operations
type EventService interface {
	// List returns events of one kind, or all of them when kind is empty
	List(ctx context.Context, kind string) ([]content.Event, error)
	Get(ctx context.Context, id string) (*content.Event, error)
	Create(ctx context.Context, req *request.EventRequest) (*content.Event, error)
	Update(ctx context.Context, id string, req *request.EventRequest) (*content.Event, error)
	Delete(ctx context.Context, id string) error
}

// ContactService defines the interface for contact form submissions
type ContactService interface {
	// Submit stores a public form submission stamped with the current time
	Submit(ctx context.Context, req *request.ContactRequest) (*content.Contact, error)

	// List returns submissions whose name, email or subject contain query
	List(ctx context.Context, query string) ([]content.Contact, error)

	Delete(ctx context.Context, id int) error

	// Export writes the filtered submissions as an xlsx workbook
	Export(ctx context.Context, w io.Writer, query string) error
}

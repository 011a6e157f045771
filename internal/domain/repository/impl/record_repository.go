package impl

import (
	"context"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
)

// blogRepository implements repository.BlogRepository by delegating to BlogPostDAO.
type blogRepository struct {
	dao dao.BlogPostDAO
}

// NewBlogRepository creates a new BlogRepository instance.
func NewBlogRepository(d dao.BlogPostDAO) repository.BlogRepository {
	return &blogRepository{dao: d}
}

func (r *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	return r.dao.Create(ctx, post)
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return r.dao.FindBySlug(ctx, slug)
}

func (r *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	return r.dao.Update(ctx, post)
}

func (r *blogRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.dao.Delete(ctx, id)
}

func (r *blogRepository) List(ctx context.Context, filter dao.BlogFilter) ([]*entity.BlogPost, error) {
	return r.dao.List(ctx, filter)
}

func (r *blogRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return r.dao.ExistsBy(ctx, "slug", slug)
}

func (r *blogRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

// eventRepository implements repository.EventRepository by delegating to EventDAO.
type eventRepository struct {
	dao dao.EventDAO
}

// NewEventRepository creates a new EventRepository instance.
func NewEventRepository(d dao.EventDAO) repository.EventRepository {
	return &eventRepository{dao: d}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return r.dao.Create(ctx, event)
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	return r.dao.Update(ctx, event)
}

func (r *eventRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.dao.Delete(ctx, id)
}

func (r *eventRepository) List(ctx context.Context, kind string) ([]*entity.Event, error) {
	return r.dao.List(ctx, kind)
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

// contactRepository implements repository.ContactRepository by delegating to ContactDAO.
type contactRepository struct {
	dao dao.ContactDAO
}

// NewContactRepository creates a new ContactRepository instance.
func NewContactRepository(d dao.ContactDAO) repository.ContactRepository {
	return &contactRepository{dao: d}
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	return r.dao.Create(ctx, contact)
}

func (r *contactRepository) GetByID(ctx context.Context, id uint) (*entity.Contact, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *contactRepository) Delete(ctx context.Context, id uint) (bool, error) {
	return r.dao.Delete(ctx, id)
}

func (r *contactRepository) List(ctx context.Context, query string) ([]*entity.Contact, error) {
	return r.dao.List(ctx, query)
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

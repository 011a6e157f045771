package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
)

// MockContentRepository is an in-memory ContentRepository with the same
// version semantics as the real DAOs
type MockContentRepository struct {
	mu   sync.RWMutex
	docs map[string]entity.ContentDocument

	// Error injection
	GetErr  error
	SaveErr error
	ListErr error

	// BeforeSave runs before the version check, e.g. to simulate a racing writer
	BeforeSave func(doc *entity.ContentDocument, expectedVersion int64)
	SaveCalls  int
}

var _ repository.ContentRepository = (*MockContentRepository)(nil)

func NewMockContentRepository() *MockContentRepository {
	return &MockContentRepository{docs: make(map[string]entity.ContentDocument)}
}

// Put stores a document directly, bypassing version checks
func (r *MockContentRepository) Put(key, payload string, version int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[key] = entity.ContentDocument{Key: key, Payload: payload, Version: version, UpdatedAt: time.Now()}
}

// Payload returns the raw stored payload, or "" when nothing is stored
func (r *MockContentRepository) Payload(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.docs[key].Payload
}

func (r *MockContentRepository) Get(ctx context.Context, domain string) (*entity.ContentDocument, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[domain]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (r *MockContentRepository) Save(ctx context.Context, doc *entity.ContentDocument, expectedVersion int64) error {
	r.mu.Lock()
	r.SaveCalls++
	hook := r.BeforeSave
	r.mu.Unlock()
	if hook != nil {
		hook(doc, expectedVersion)
	}
	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	current, exists := r.docs[doc.Key]
	var version int64
	if exists {
		version = current.Version
	}
	if expectedVersion != dao.AnyVersion && expectedVersion != version {
		return dao.ErrVersionMismatch
	}

	now := time.Now()
	doc.Version = version + 1
	doc.UpdatedAt = now
	if exists {
		doc.CreatedAt = current.CreatedAt
	} else {
		doc.CreatedAt = now
	}
	r.docs[doc.Key] = *doc
	return nil
}

func (r *MockContentRepository) List(ctx context.Context) ([]*entity.ContentDocument, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.ContentDocument, 0, len(r.docs))
	for _, doc := range r.docs {
		d := doc
		out = append(out, &d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// MockBlogRepository is a mock implementation of BlogRepository
type MockBlogRepository struct {
	mu    sync.RWMutex
	posts map[string]*entity.BlogPost

	CreateErr error
	ListErr   error
}

var _ repository.BlogRepository = (*MockBlogRepository)(nil)

func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{posts: make(map[string]*entity.BlogPost)}
}

func (r *MockBlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	post.UpdatedAt = post.CreatedAt
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *MockBlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if post, ok := r.posts[id]; ok {
		out := *post
		return &out, nil
	}
	return nil, nil
}

func (r *MockBlogRepository) GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, post := range r.posts {
		if post.Slug == slug {
			out := *post
			return &out, nil
		}
	}
	return nil, nil
}

func (r *MockBlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *MockBlogRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}

func (r *MockBlogRepository) List(ctx context.Context, filter dao.BlogFilter) ([]*entity.BlogPost, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.BlogPost
	for _, post := range r.posts {
		if filter.PublishedOnly && !post.Published {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(post.Category, filter.Category) {
			continue
		}
		if filter.Query != "" && !containsFold(filter.Query, post.Title, post.Excerpt, post.Content) {
			continue
		}
		p := *post
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MockBlogRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	post, err := r.GetBySlug(ctx, slug)
	return post != nil, err
}

func (r *MockBlogRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mu     sync.RWMutex
	events map[string]*entity.Event
}

var _ repository.EventRepository = (*MockEventRepository)(nil)

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{events: make(map[string]*entity.Event)}
}

func (r *MockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *event
	r.events[event.ID] = &stored
	return nil
}

func (r *MockEventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if event, ok := r.events[id]; ok {
		out := *event
		return &out, nil
	}
	return nil, nil
}

func (r *MockEventRepository) Update(ctx context.Context, event *entity.Event) error {
	return r.Create(ctx, event)
}

func (r *MockEventRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return false, nil
	}
	delete(r.events, id)
	return true, nil
}

func (r *MockEventRepository) List(ctx context.Context, kind string) ([]*entity.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Event
	for _, event := range r.events {
		if kind != "" && event.Kind != kind {
			continue
		}
		e := *event
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *MockEventRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.events)), nil
}

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	mu       sync.RWMutex
	contacts map[uint]*entity.Contact
	nextID   uint

	CreateErr error
}

var _ repository.ContactRepository = (*MockContactRepository)(nil)

func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{contacts: make(map[uint]*entity.Contact), nextID: 1}
}

func (r *MockContactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	contact.ID = r.nextID
	r.nextID++
	stored := *contact
	r.contacts[contact.ID] = &stored
	return nil
}

func (r *MockContactRepository) GetByID(ctx context.Context, id uint) (*entity.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.contacts[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, nil
}

func (r *MockContactRepository) Delete(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[id]; !ok {
		return false, nil
	}
	delete(r.contacts, id)
	return true, nil
}

func (r *MockContactRepository) List(ctx context.Context, query string) ([]*entity.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*entity.Contact
	for _, c := range r.contacts {
		if query != "" && !containsFold(query, c.Name, c.Email, c.Subject, c.Message) {
			continue
		}
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MockContactRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.contacts)), nil
}

func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/richtext"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

const (
	domainBlogs  = "blogs"
	domainEvents = "events"
	maxSlugTries = 50
)

// blogService implements service.BlogService
type blogService struct {
	repo      repository.BlogRepository
	publisher service.ChangePublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewBlogService creates a new BlogService instance
func NewBlogService(repo repository.BlogRepository, publisher service.ChangePublisher, logger *zap.Logger) service.BlogService {
	if publisher == nil {
		publisher = service.NopPublisher{}
	}
	return &blogService{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

func (s *blogService) List(ctx context.Context, query service.BlogQuery) ([]content.BlogPost, error) {
	posts, err := s.repo.List(ctx, dao.BlogFilter{
		Query:         strings.TrimSpace(query.Query),
		Category:      strings.TrimSpace(query.Category),
		PublishedOnly: query.PublishedOnly,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	out := make([]content.BlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ToContent())
	}
	return out, nil
}

func (s *blogService) Get(ctx context.Context, id string) (*content.BlogPost, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := post.ToContent()
	return &out, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*content.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if post == nil {
		return nil, service.ErrBlogNotFound
	}
	out := post.ToContent()
	return &out, nil
}

func (s *blogService) Create(ctx context.Context, req *request.BlogPostRequest) (*content.BlogPost, error) {
	post := &entity.BlogPost{ID: uuid.New().String(), Published: true}
	s.apply(post, req)

	slug, err := s.uniqueSlug(ctx, req.Slug, req.Title, "")
	if err != nil {
		return nil, err
	}
	post.Slug = slug
	post.CreatedAt = s.now()
	post.UpdatedAt = post.CreatedAt

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	s.logger.Info("blog post created", zap.String("id", post.ID), zap.String("slug", post.Slug))
	s.publish(service.ActionCreated, post.ID)

	out := post.ToContent()
	return &out, nil
}

func (s *blogService) Update(ctx context.Context, id string, req *request.BlogPostRequest) (*content.BlogPost, error) {
	post, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	s.apply(post, req)

	if req.Slug != "" || post.Slug == "" {
		slug, err := s.uniqueSlug(ctx, req.Slug, req.Title, post.ID)
		if err != nil {
			return nil, err
		}
		post.Slug = slug
	}
	post.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	s.publish(service.ActionUpdated, post.ID)

	out := post.ToContent()
	return &out, nil
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if !deleted {
		return service.ErrBlogNotFound
	}
	s.logger.Info("blog post deleted", zap.String("id", id))
	s.publish(service.ActionDeleted, id)
	return nil
}

func (s *blogService) find(ctx context.Context, id string) (*entity.BlogPost, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if post == nil {
		return nil, service.ErrBlogNotFound
	}
	return post, nil
}

// apply copies request fields, sanitizing the body and deriving a missing excerpt
func (s *blogService) apply(post *entity.BlogPost, req *request.BlogPostRequest) {
	post.Title = strings.TrimSpace(req.Title)
	post.Content = richtext.Sanitize(req.Content)
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	if post.Excerpt == "" {
		post.Excerpt = richtext.Excerpt(post.Content, richtext.DefaultExcerptLength)
	}
	post.Category = strings.TrimSpace(req.Category)
	post.Author = strings.TrimSpace(req.Author)
	post.Image = req.Image
	post.Tags = normalizeTags(req.Tags)
	if req.Published != nil {
		post.Published = *req.Published
	}
}

// uniqueSlug suffixes -2, -3 ... until no other post owns the slug
func (s *blogService) uniqueSlug(ctx context.Context, requested, title, ownerID string) (string, error) {
	base := richtext.Slugify(requested)
	if base == "" {
		base = richtext.Slugify(title)
	}
	if base == "" {
		base = "post"
	}

	for i := 1; i <= maxSlugTries; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		existing, err := s.repo.GetBySlug(ctx, candidate)
		if err != nil {
			return "", apperrors.Wrap(err, apperrors.ErrInternalError)
		}
		if existing == nil || existing.ID == ownerID {
			return candidate, nil
		}
	}
	return "", apperrors.ErrConflict.WithMessage("could not find a free slug for " + base)
}

func (s *blogService) publish(action, id string) {
	s.publisher.Publish(service.ChangeEvent{Domain: domainBlogs, Action: action, ID: id, At: s.now()})
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

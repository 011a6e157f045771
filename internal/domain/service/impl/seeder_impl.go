package impl

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

// seeder implements service.Seeder
type seeder struct {
	documents repository.ContentRepository
	blogRepo  repository.BlogRepository
	eventRepo repository.EventRepository
	contacts  repository.ContactRepository
	blogs     service.BlogService
	events    service.EventService
	logger    *zap.Logger
}

// NewSeeder creates a Seeder. Blogs and events go through their services so
// seeded records get ids, slugs and excerpts like operator-created ones.
func NewSeeder(
	documents repository.ContentRepository,
	blogRepo repository.BlogRepository,
	eventRepo repository.EventRepository,
	contacts repository.ContactRepository,
	blogs service.BlogService,
	events service.EventService,
	logger *zap.Logger,
) service.Seeder {
	return &seeder{
		documents: documents,
		blogRepo:  blogRepo,
		eventRepo: eventRepo,
		contacts:  contacts,
		blogs:     blogs,
		events:    events,
		logger:    logger,
	}
}

// Seed inserts every bundled document that is not stored yet, and the demo
// records of each collection that is still empty.
func (s *seeder) Seed(ctx context.Context) (*service.SeedResult, error) {
	data, err := content.Seed()
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	result := &service.SeedResult{Documents: []string{}}

	for _, d := range content.Domains() {
		payload, ok := data.Documents[d.Name]
		if !ok {
			continue
		}
		doc := &entity.ContentDocument{Key: d.Name, Payload: string(payload)}
		err := s.documents.Save(ctx, doc, 0)
		if errors.Is(err, dao.ErrVersionMismatch) {
			continue
		}
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
		}
		result.Documents = append(result.Documents, d.Name)
	}

	if n, err := s.blogRepo.Count(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	} else if n == 0 {
		for _, p := range data.Blogs {
			published := p.Published
			if _, err := s.blogs.Create(ctx, &request.BlogPostRequest{
				Title:     p.Title,
				Slug:      p.Slug,
				Excerpt:   p.Excerpt,
				Content:   p.Content,
				Category:  p.Category,
				Author:    p.Author,
				Image:     p.Image,
				Tags:      p.Tags,
				Published: &published,
			}); err != nil {
				return nil, err
			}
			result.Blogs++
		}
	}

	if n, err := s.eventRepo.Count(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	} else if n == 0 {
		for _, e := range data.Events {
			if _, err := s.events.Create(ctx, &request.EventRequest{
				Kind:        e.Kind,
				Title:       e.Title,
				Description: e.Description,
				Date:        e.Date,
				Time:        e.Time,
				Speaker:     e.Speaker,
				Link:        e.Link,
				Timezone:    e.Timezone,
				Duration:    e.Duration,
				Category:    e.Category,
			}); err != nil {
				return nil, err
			}
			result.Events++
		}
	}

	if n, err := s.contacts.Count(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	} else if n == 0 {
		for _, c := range data.Contacts {
			stored := entity.ContactFromContent(c)
			stored.ID = 0
			if err := s.contacts.Create(ctx, stored); err != nil {
				return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
			}
			result.Contacts++
		}
	}

	s.logger.Info("seed complete",
		zap.Strings("documents", result.Documents),
		zap.Int("blogs", result.Blogs),
		zap.Int("events", result.Events),
		zap.Int("contacts", result.Contacts))
	return result, nil
}

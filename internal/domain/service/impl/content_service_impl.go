package impl

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

// contentService implements service.ContentService
type contentService struct {
	*documentStore
}

// NewContentService creates a new ContentService instance
func NewContentService(
	repo repository.ContentRepository,
	publisher service.ChangePublisher,
	logger *zap.Logger,
) service.ContentService {
	return &contentService{documentStore: newDocumentStore(repo, publisher, logger)}
}

func (s *contentService) Get(ctx context.Context, domain string) (*service.Document, error) {
	d, err := lookupDomain(domain)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, d)
}

func (s *contentService) Replace(ctx context.Context, domain string, body []byte, ifMatch int64) (*service.Document, error) {
	d, err := lookupDomain(domain)
	if err != nil {
		return nil, err
	}
	if _, err := d.Decode(body); err != nil {
		return nil, invalidDocument(err)
	}
	compact, err := content.Compact(body)
	if err != nil {
		return nil, invalidDocument(err)
	}

	saved, err := s.save(ctx, d, compact, ifMatch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("content document replaced", zap.String("domain", d.Name), zap.Int64("version", saved.Version))
	s.publish(d.Name, "", service.ActionUpdated, "", saved.Version)
	return saved, nil
}

func (s *contentService) GetSection(ctx context.Context, domain, section string) (*service.Document, error) {
	d, err := lookupDomain(domain)
	if err != nil {
		return nil, err
	}
	if !d.HasSection(section) {
		return nil, service.ErrUnknownSection
	}

	doc, err := s.load(ctx, d)
	if err != nil {
		return nil, err
	}
	obj, err := content.ParseObject(doc.Data)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	raw, ok := obj.Get(section)
	if !ok {
		return nil, service.ErrSectionNotFound
	}
	doc.Data = raw
	return doc, nil
}

func (s *contentService) ReplaceSection(ctx context.Context, domain, section string, body []byte, ifMatch int64) (*service.Document, error) {
	d, err := lookupDomain(domain)
	if err != nil {
		return nil, err
	}
	if !d.HasSection(section) {
		return nil, service.ErrUnknownSection
	}
	compact, err := content.Compact(body)
	if err != nil {
		return nil, invalidDocument(err)
	}

	saved, stored, err := s.modifySection(ctx, d, section, ifMatch, func(json.RawMessage) (json.RawMessage, error) {
		return compact, nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("content section replaced",
		zap.String("domain", d.Name), zap.String("section", section), zap.Int64("version", saved.Version))
	saved.Data = stored
	return saved, nil
}

func (s *contentService) List(ctx context.Context) ([]*service.Document, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	byKey := make(map[string]*service.Document, len(stored))
	for _, doc := range stored {
		byKey[doc.Key] = &service.Document{
			Domain:    doc.Key,
			Version:   doc.Version,
			Data:      json.RawMessage(doc.Payload),
			UpdatedAt: doc.UpdatedAt,
		}
	}

	docs := make([]*service.Document, 0, len(content.Domains()))
	for _, d := range content.Domains() {
		if doc, ok := byKey[d.Name]; ok {
			docs = append(docs, doc)
			continue
		}
		docs = append(docs, &service.Document{Domain: d.Name, Data: content.Default(d.Name)})
	}
	return docs, nil
}

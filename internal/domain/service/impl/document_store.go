package impl

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

// maxMergeAttempts bounds the read-merge-write loop when no version was supplied
const maxMergeAttempts = 3

// documentStore holds the read-merge-write logic shared by the document services
type documentStore struct {
	repo      repository.ContentRepository
	publisher service.ChangePublisher
	logger    *zap.Logger
	now       func() time.Time
}

func newDocumentStore(repo repository.ContentRepository, publisher service.ChangePublisher, logger *zap.Logger) *documentStore {
	if publisher == nil {
		publisher = service.NopPublisher{}
	}
	return &documentStore{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func lookupDomain(name string) (content.Domain, error) {
	d, ok := content.Lookup(name)
	if !ok {
		return content.Domain{}, service.ErrUnknownDomain
	}
	return d, nil
}

// load returns the stored document or the bundled default at version 0
func (s *documentStore) load(ctx context.Context, d content.Domain) (*service.Document, error) {
	stored, err := s.repo.Get(ctx, d.Name)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if stored != nil {
		return &service.Document{
			Domain:    d.Name,
			Version:   stored.Version,
			Data:      json.RawMessage(stored.Payload),
			UpdatedAt: stored.UpdatedAt,
		}, nil
	}

	def := content.Default(d.Name)
	if def == nil {
		return nil, service.ErrDocumentNotFound
	}
	return &service.Document{Domain: d.Name, Data: def}, nil
}

// save performs a conditional write and maps a stale version to a conflict
func (s *documentStore) save(ctx context.Context, d content.Domain, payload []byte, expected int64) (*service.Document, error) {
	doc := &entity.ContentDocument{Key: d.Name, Payload: string(payload)}
	if err := s.repo.Save(ctx, doc, expected); err != nil {
		if errors.Is(err, dao.ErrVersionMismatch) {
			return nil, service.ErrVersionConflict
		}
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	return &service.Document{
		Domain:    d.Name,
		Version:   doc.Version,
		Data:      json.RawMessage(doc.Payload),
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// modifySection replaces one top-level member of a document. Without an
// explicit ifMatch the merge is retried against fresh state when another
// writer got in first.
func (s *documentStore) modifySection(
	ctx context.Context,
	d content.Domain,
	section string,
	ifMatch int64,
	fn func(current json.RawMessage) (json.RawMessage, error),
) (*service.Document, json.RawMessage, error) {
	for attempt := 1; ; attempt++ {
		current, err := s.load(ctx, d)
		if errors.Is(err, service.ErrDocumentNotFound) {
			current = &service.Document{Domain: d.Name, Data: json.RawMessage(`{}`)}
		} else if err != nil {
			return nil, nil, err
		}
		if ifMatch != service.AnyVersion && current.Version != ifMatch {
			return nil, nil, service.ErrVersionConflict
		}

		obj, err := content.ParseObject(current.Data)
		if err != nil {
			return nil, nil, apperrors.Wrap(err, apperrors.ErrInternalError)
		}
		existing, _ := obj.Get(section)
		next, err := fn(existing)
		if err != nil {
			return nil, nil, err
		}
		obj.Set(section, next)

		merged := obj.Bytes()
		if _, err := d.Decode(merged); err != nil {
			return nil, nil, invalidDocument(err)
		}

		saved, err := s.save(ctx, d, merged, current.Version)
		if err == nil {
			s.publish(d.Name, section, service.ActionUpdated, "", saved.Version)
			stored, _ := obj.Get(section)
			return saved, stored, nil
		}
		if !errors.Is(err, service.ErrVersionConflict) || ifMatch != service.AnyVersion || attempt == maxMergeAttempts {
			return nil, nil, err
		}
		s.logger.Debug("section merge raced another writer, retrying",
			zap.String("domain", d.Name), zap.String("section", section), zap.Int("attempt", attempt))
	}
}

// invalidDocument exposes the decode error text, which names the offending field
func invalidDocument(err error) error {
	return service.ErrInvalidDocument.WithMessage(err.Error()).WithError(err)
}

func (s *documentStore) publish(domain, section, action, id string, version int64) {
	s.publisher.Publish(service.ChangeEvent{
		Domain:  domain,
		Section: section,
		Action:  action,
		ID:      id,
		Version: version,
		At:      s.now(),
	})
}

// updateList applies fn to the collection stored at section, or at
// section.member when member is set. Records fn does not touch keep their
// stored bytes, as do the other members of the section.
func updateList(ctx context.Context, s *documentStore, domain, section, member string, fn func(*content.RawList) error) error {
	return updateRaw(ctx, s, domain, section, member, func(raw json.RawMessage) (json.RawMessage, error) {
		records, err := content.ParseRawList(raw)
		if err != nil {
			return nil, invalidDocument(err)
		}
		if err := fn(records); err != nil {
			return nil, err
		}
		return records.Bytes(), nil
	})
}

// updateMember decodes section.member into T, applies fn and writes it back
func updateMember[T any](ctx context.Context, s *documentStore, domain, section, member string, fn func(*T) error) error {
	return updateRaw(ctx, s, domain, section, member, func(raw json.RawMessage) (json.RawMessage, error) {
		var value T
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &value); err != nil {
				return nil, invalidDocument(err)
			}
		}
		if err := fn(&value); err != nil {
			return nil, err
		}
		return json.Marshal(value)
	})
}

func updateRaw(ctx context.Context, s *documentStore, domain, section, member string, fn func(json.RawMessage) (json.RawMessage, error)) error {
	d, err := lookupDomain(domain)
	if err != nil {
		return err
	}
	_, _, err = s.modifySection(ctx, d, section, service.AnyVersion, func(raw json.RawMessage) (json.RawMessage, error) {
		if member == "" {
			return fn(raw)
		}
		obj := content.NewObject()
		if len(raw) > 0 && string(raw) != "null" {
			parsed, err := content.ParseObject(raw)
			if err != nil {
				return nil, invalidDocument(err)
			}
			obj = parsed
		}
		current, _ := obj.Get(member)
		next, err := fn(current)
		if err != nil {
			return nil, err
		}
		obj.Set(member, next)
		return obj.Bytes(), nil
	})
	return err
}

package impl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

// eventService implements service.EventService
type eventService struct {
	repo      repository.EventRepository
	publisher service.ChangePublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewEventService creates a new EventService instance
func NewEventService(repo repository.EventRepository, publisher service.ChangePublisher, logger *zap.Logger) service.EventService {
	if publisher == nil {
		publisher = service.NopPublisher{}
	}
	return &eventService{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

func (s *eventService) List(ctx context.Context, kind string) ([]content.Event, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind != "" && !content.ValidEventKind(kind) {
		return nil, service.ErrInvalidEventKind
	}
	events, err := s.repo.List(ctx, kind)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	out := make([]content.Event, 0, len(events))
	for _, e := range events {
		out = append(out, e.ToContent())
	}
	return out, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*content.Event, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	out := event.ToContent()
	return &out, nil
}

func (s *eventService) Create(ctx context.Context, req *request.EventRequest) (*content.Event, error) {
	event := &entity.Event{ID: uuid.New().String()}
	applyEvent(event, req)
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	event.CreatedAt = s.now()
	event.UpdatedAt = event.CreatedAt

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	s.logger.Info("event created", zap.String("id", event.ID), zap.String("kind", event.Kind))
	s.publish(service.ActionCreated, event.ID)

	out := event.ToContent()
	return &out, nil
}

func (s *eventService) Update(ctx context.Context, id string, req *request.EventRequest) (*content.Event, error) {
	event, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applyEvent(event, req)
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	event.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	s.publish(service.ActionUpdated, event.ID)

	out := event.ToContent()
	return &out, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if !deleted {
		return service.ErrEventNotFound
	}
	s.publish(service.ActionDeleted, id)
	return nil
}

func (s *eventService) find(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if event == nil {
		return nil, service.ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) publish(action, id string) {
	s.publisher.Publish(service.ChangeEvent{Domain: domainEvents, Action: action, ID: id, At: s.now()})
}

func applyEvent(event *entity.Event, req *request.EventRequest) {
	event.Kind = strings.ToLower(strings.TrimSpace(req.Kind))
	event.Title = strings.TrimSpace(req.Title)
	event.Description = req.Description
	event.Date = strings.TrimSpace(req.Date)
	event.Time = strings.TrimSpace(req.Time)
	event.Speaker = strings.TrimSpace(req.Speaker)
	event.Link = strings.TrimSpace(req.Link)
	event.Timezone = strings.TrimSpace(req.Timezone)
	event.Duration = strings.TrimSpace(req.Duration)
	event.Category = strings.TrimSpace(req.Category)
}

func validateEvent(event *entity.Event) error {
	c := event.ToContent()
	if err := c.Validate(); err != nil {
		if !content.ValidEventKind(event.Kind) {
			return service.ErrInvalidEventKind
		}
		return apperrors.ErrValidation.WithMessage(err.Error())
	}
	return nil
}

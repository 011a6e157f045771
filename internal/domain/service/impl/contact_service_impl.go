package impl

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/content"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/dto/request"
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

const contactSheet = "Contacts"

var contactHeaders = []string{"ID", "Name", "Email", "Phone", "Subject", "Message", "Date"}

// contactService implements service.ContactService
type contactService struct {
	repo   repository.ContactRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewContactService creates a new ContactService instance
func NewContactService(repo repository.ContactRepository, logger *zap.Logger) service.ContactService {
	return &contactService{repo: repo, logger: logger, now: time.Now}
}

func (s *contactService) Submit(ctx context.Context, req *request.ContactRequest) (*content.Contact, error) {
	c := content.Contact{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   strings.TrimSpace(req.Phone),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
		Date:    s.now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, service.ErrInvalidContact.WithMessage(err.Error())
	}

	stored := entity.ContactFromContent(c)
	if err := s.repo.Create(ctx, stored); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	s.logger.Info("contact submitted", zap.Uint("id", stored.ID))

	out := stored.ToContent()
	return &out, nil
}

func (s *contactService) List(ctx context.Context, query string) ([]content.Contact, error) {
	contacts, err := s.repo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	out := make([]content.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.ToContent())
	}
	return out, nil
}

func (s *contactService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return service.ErrContactNotFound
	}
	deleted, err := s.repo.Delete(ctx, uint(id))
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if !deleted {
		return service.ErrContactNotFound
	}
	return nil
}

func (s *contactService) Export(ctx context.Context, w io.Writer, query string) error {
	contacts, err := s.List(ctx, query)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("closing workbook failed", zap.Error(err))
		}
	}()

	if err := f.SetSheetName("Sheet1", contactSheet); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if err := writeRow(f, 1, headerRow()); err != nil {
		return err
	}
	for i, c := range contacts {
		row := []any{c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Date.Format(time.RFC3339)}
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	return nil
}

func headerRow() []any {
	row := make([]any, len(contactHeaders))
	for i, h := range contactHeaders {
		row[i] = h
	}
	return row
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInternalError)
	}
	if err := f.SetSheetRow(contactSheet, cell, &values); err != nil {
		return apperrors.Wrap(fmt.Errorf("writing row %d: %w", row, err), apperrors.ErrInternalError)
	}
	return nil
}

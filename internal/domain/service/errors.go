package service

import (
	apperrors "github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/errors"
)

var (
	ErrUnknownDomain      = apperrors.ErrNotFound.WithMessage("unknown content domain")
	ErrUnknownSection     = apperrors.ErrNotFound.WithMessage("unknown document section")
	ErrDocumentNotFound   = apperrors.ErrNotFound.WithMessage("document not found")
	ErrSectionNotFound    = apperrors.ErrNotFound.WithMessage("section not found in document")
	ErrItemNotFound       = apperrors.ErrNotFound.WithMessage("item not found")
	ErrInvalidDocument    = apperrors.ErrValidation.WithMessage("document does not match the expected shape")
	ErrInvalidMove        = apperrors.ErrBadRequest.WithMessage("item cannot move past either end")
	ErrVersionConflict    = apperrors.ErrVersionConflict
	ErrBlogNotFound       = apperrors.ErrNotFound.WithMessage("blog post not found")
	ErrEventNotFound      = apperrors.ErrNotFound.WithMessage("event not found")
	ErrInvalidEventKind   = apperrors.ErrBadRequest.WithMessage("event kind must be webinar or manthan")
	ErrContactNotFound    = apperrors.ErrNotFound.WithMessage("contact not found")
	ErrInvalidContact     = apperrors.ErrValidation.WithMessage("contact submission is incomplete")
	ErrInvalidCredentials = apperrors.ErrUnauthorized.WithMessage("invalid credentials")
	ErrInvalidToken       = apperrors.ErrUnauthorized.WithMessage("invalid or expired token")
	ErrSnapshotDisabled   = apperrors.ErrServiceUnavailable.WithMessage("snapshots are disabled")
)

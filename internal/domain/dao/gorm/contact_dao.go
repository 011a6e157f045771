package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// contactDAO implements dao.ContactDAO using GORM.
type contactDAO struct {
	*baseGormDAO[entity.Contact, uint]
}

// NewContactDAO creates a new GORM-based ContactDAO.
func NewContactDAO(db *gorm.DB) dao.ContactDAO {
	return &contactDAO{
		baseGormDAO: newBaseGormDAO[entity.Contact, uint](db),
	}
}

// List returns submissions oldest first, optionally filtered by query.
func (d *contactDAO) List(ctx context.Context, query string) ([]*entity.Contact, error) {
	q := d.getDB().WithContext(ctx)
	if query != "" {
		pattern := likePattern(query)
		q = q.Where(likeClause("name", "email", "subject", "message"), pattern, pattern, pattern, pattern)
	}

	var contacts []*entity.Contact
	err := q.Order("id ASC").Find(&contacts).Error
	return contacts, err
}

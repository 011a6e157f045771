package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// eventDAO implements dao.EventDAO using GORM.
type eventDAO struct {
	*baseGormDAO[entity.Event, string]
}

// NewEventDAO creates a new GORM-based EventDAO.
func NewEventDAO(db *gorm.DB) dao.EventDAO {
	return &eventDAO{
		baseGormDAO: newBaseGormDAO[entity.Event, string](db),
	}
}

// List returns events ordered by date, optionally restricted to one kind.
func (d *eventDAO) List(ctx context.Context, kind string) ([]*entity.Event, error) {
	query := d.getDB().WithContext(ctx)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var events []*entity.Event
	err := query.Order("event_date ASC").Order("created_at ASC").Find(&events).Error
	return events, err
}

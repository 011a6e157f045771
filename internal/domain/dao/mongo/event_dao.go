package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/mongo/document"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/mongo/mapper"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// eventDAO implements dao.EventDAO using MongoDB.
type eventDAO struct {
	*baseMongoDAO
	mapper *mapper.EventMapper
}

// NewEventDAO creates a new MongoDB-based EventDAO.
func NewEventDAO(db *mongo.Database) dao.EventDAO {
	return &eventDAO{
		baseMongoDAO: newBaseMongoDAO(db, document.EventDocument{}.CollectionName()),
		mapper:       mapper.NewEventMapper(),
	}
}

// Create inserts a new event.
func (d *eventDAO) Create(ctx context.Context, e *entity.Event) error {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
	return d.insertOne(ctx, d.mapper.ToDocument(e))
}

// FindByID retrieves an event by id.
func (d *eventDAO) FindByID(ctx context.Context, id string) (*entity.Event, error) {
	var doc document.EventDocument
	found, err := d.findOne(ctx, bson.M{"_id": id}, &doc)
	if err != nil || !found {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Update replaces a stored event.
func (d *eventDAO) Update(ctx context.Context, e *entity.Event) error {
	e.UpdatedAt = time.Now()
	return d.replaceOne(ctx, bson.M{"_id": e.ID}, d.mapper.ToDocument(e))
}

// Delete removes an event by id.
func (d *eventDAO) Delete(ctx context.Context, id string) (bool, error) {
	return d.deleteOne(ctx, bson.M{"_id": id})
}

// List returns events ordered by date, optionally restricted to one kind.
func (d *eventDAO) List(ctx context.Context, kind string) ([]*entity.Event, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = kind
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})

	var docs []*document.EventDocument
	if err := d.findMany(ctx, filter, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

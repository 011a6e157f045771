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

// contactDAO implements dao.ContactDAO using MongoDB.
type contactDAO struct {
	*baseMongoDAO
	idCounter *IDCounter
	mapper    *mapper.ContactMapper
}

// NewContactDAO creates a new MongoDB-based ContactDAO.
func NewContactDAO(db *mongo.Database, idCounter *IDCounter) dao.ContactDAO {
	return &contactDAO{
		baseMongoDAO: newBaseMongoDAO(db, document.ContactDocument{}.CollectionName()),
		idCounter:    idCounter,
		mapper:       mapper.NewContactMapper(),
	}
}

// Create inserts a submission with the next numeric id.
func (d *contactDAO) Create(ctx context.Context, c *entity.Contact) error {
	id, err := d.idCounter.NextID(ctx, d.collection.Name())
	if err != nil {
		return err
	}
	c.ID = id
	if c.Date.IsZero() {
		c.Date = time.Now()
	}
	return d.insertOne(ctx, d.mapper.ToDocument(c))
}

// FindByID retrieves a submission by numeric id.
func (d *contactDAO) FindByID(ctx context.Context, id uint) (*entity.Contact, error) {
	var doc document.ContactDocument
	found, err := d.findOne(ctx, bson.M{"numeric_id": id}, &doc)
	if err != nil || !found {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Update replaces a stored submission.
func (d *contactDAO) Update(ctx context.Context, c *entity.Contact) error {
	return d.replaceOne(ctx, bson.M{"numeric_id": c.ID}, d.mapper.ToDocument(c))
}

// Delete removes a submission by numeric id.
func (d *contactDAO) Delete(ctx context.Context, id uint) (bool, error) {
	return d.deleteOne(ctx, bson.M{"numeric_id": id})
}

// List returns submissions oldest first, optionally filtered by query.
func (d *contactDAO) List(ctx context.Context, query string) ([]*entity.Contact, error) {
	filter := bson.M{}
	if query != "" {
		filter = containsFilter(query, "name", "email", "subject", "message")
	}
	opts := options.Find().SetSort(bson.D{{Key: "numeric_id", Value: 1}})

	var docs []*document.ContactDocument
	if err := d.findMany(ctx, filter, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

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

// contentDocumentDAO implements dao.ContentDocumentDAO using MongoDB.
type contentDocumentDAO struct {
	*baseMongoDAO
	mapper *mapper.ContentDocumentMapper
}

// NewContentDocumentDAO creates a new MongoDB-based ContentDocumentDAO.
func NewContentDocumentDAO(db *mongo.Database) dao.ContentDocumentDAO {
	return &contentDocumentDAO{
		baseMongoDAO: newBaseMongoDAO(db, document.ContentDocumentDoc{}.CollectionName()),
		mapper:       mapper.NewContentDocumentMapper(),
	}
}

// FindByKey retrieves the document stored under key.
func (d *contentDocumentDAO) FindByKey(ctx context.Context, key string) (*entity.ContentDocument, error) {
	var doc document.ContentDocumentDoc
	found, err := d.findOne(ctx, bson.M{"key": key}, &doc)
	if err != nil || !found {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Save writes the payload with a single atomic command per case:
// insert for a first write, version-filtered update otherwise.
func (d *contentDocumentDAO) Save(ctx context.Context, doc *entity.ContentDocument, expectedVersion int64) error {
	now := time.Now()

	if expectedVersion == 0 {
		stored := &document.ContentDocumentDoc{
			Key:       doc.Key,
			Payload:   doc.Payload,
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := d.insertOne(ctx, stored); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return dao.ErrVersionMismatch
			}
			return err
		}
		doc.Version, doc.CreatedAt, doc.UpdatedAt = 1, now, now
		return nil
	}

	filter := bson.M{"key": doc.Key}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if expectedVersion == dao.AnyVersion {
		opts.SetUpsert(true)
	} else {
		filter["version"] = expectedVersion
	}
	update := bson.M{
		"$set":         bson.M{"payload": doc.Payload, "updated_at": now},
		"$inc":         bson.M{"version": int64(1)},
		"$setOnInsert": bson.M{"created_at": now},
	}

	var stored document.ContentDocumentDoc
	err := d.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&stored)
	if err == mongo.ErrNoDocuments {
		return dao.ErrVersionMismatch
	}
	if err != nil {
		return err
	}

	doc.Version = stored.Version
	doc.CreatedAt = stored.CreatedAt
	doc.UpdatedAt = stored.UpdatedAt
	return nil
}

// FindAll returns every stored document ordered by key.
func (d *contentDocumentDAO) FindAll(ctx context.Context) ([]*entity.ContentDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "key", Value: 1}})

	var docs []*document.ContentDocumentDoc
	if err := d.findMany(ctx, bson.M{}, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

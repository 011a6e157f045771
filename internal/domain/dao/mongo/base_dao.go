// Package mongo provides MongoDB-based DAO implementations.
package mongo

import (
	"context"
	"regexp"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IDCounter hands out auto-incrementing numeric ids per collection so
// MongoDB records keep the same id shape as the SQL tables.
type IDCounter struct {
	collection *mongo.Collection
	mu         sync.Mutex
}

type counterDocument struct {
	ID    string `bson:"_id"`
	Value uint   `bson:"value"`
}

// NewIDCounter creates a new IDCounter backed by the "counters" collection.
func NewIDCounter(db *mongo.Database) *IDCounter {
	return &IDCounter{
		collection: db.Collection("counters"),
	}
}

// NextID returns the next available ID for a given collection.
func (c *IDCounter) NextID(ctx context.Context, collectionName string) (uint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filter := bson.M{"_id": collectionName}
	update := bson.M{"$inc": bson.M{"value": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDocument
	if err := c.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter); err != nil {
		return 0, err
	}
	return counter.Value, nil
}

// baseMongoDAO provides the collection helpers shared by record DAOs.
type baseMongoDAO struct {
	collection *mongo.Collection
}

func newBaseMongoDAO(db *mongo.Database, collectionName string) *baseMongoDAO {
	return &baseMongoDAO{collection: db.Collection(collectionName)}
}

// Count returns the total number of documents.
func (d *baseMongoDAO) Count(ctx context.Context) (int64, error) {
	return d.collection.CountDocuments(ctx, bson.M{})
}

// ExistsBy checks if a document exists by a field value.
func (d *baseMongoDAO) ExistsBy(ctx context.Context, field string, value any) (bool, error) {
	count, err := d.collection.CountDocuments(ctx, bson.M{field: value}, options.Count().SetLimit(1))
	return count > 0, err
}

// findOne decodes the first match into result and reports whether one was found.
func (d *baseMongoDAO) findOne(ctx context.Context, filter bson.M, result any) (bool, error) {
	err := d.collection.FindOne(ctx, filter).Decode(result)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (d *baseMongoDAO) findMany(ctx context.Context, filter bson.M, opts *options.FindOptions, results any) error {
	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func (d *baseMongoDAO) insertOne(ctx context.Context, doc any) error {
	_, err := d.collection.InsertOne(ctx, doc)
	return err
}

func (d *baseMongoDAO) replaceOne(ctx context.Context, filter bson.M, doc any) error {
	_, err := d.collection.ReplaceOne(ctx, filter, doc)
	return err
}

func (d *baseMongoDAO) deleteOne(ctx context.Context, filter bson.M) (bool, error) {
	result, err := d.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// containsFilter matches documents where any of fields contains term, ignoring case.
func containsFilter(term string, fields ...string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: pattern})
	}
	return bson.M{"$or": or}
}

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

// blogPostDAO implements dao.BlogPostDAO using MongoDB.
type blogPostDAO struct {
	*baseMongoDAO
	mapper *mapper.BlogPostMapper
}

// NewBlogPostDAO creates a new MongoDB-based BlogPostDAO.
func NewBlogPostDAO(db *mongo.Database) dao.BlogPostDAO {
	return &blogPostDAO{
		baseMongoDAO: newBaseMongoDAO(db, document.BlogPostDocument{}.CollectionName()),
		mapper:       mapper.NewBlogPostMapper(),
	}
}

// Create inserts a new post.
func (d *blogPostDAO) Create(ctx context.Context, post *entity.BlogPost) error {
	now := time.Now()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now
	return d.insertOne(ctx, d.mapper.ToDocument(post))
}

// FindByID retrieves a post by id.
func (d *blogPostDAO) FindByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	return d.findBy(ctx, bson.M{"_id": id})
}

// FindBySlug retrieves a post by slug.
func (d *blogPostDAO) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return d.findBy(ctx, bson.M{"slug": slug})
}

func (d *blogPostDAO) findBy(ctx context.Context, filter bson.M) (*entity.BlogPost, error) {
	var doc document.BlogPostDocument
	found, err := d.findOne(ctx, filter, &doc)
	if err != nil || !found {
		return nil, err
	}
	return d.mapper.ToEntity(&doc), nil
}

// Update replaces a stored post.
func (d *blogPostDAO) Update(ctx context.Context, post *entity.BlogPost) error {
	post.UpdatedAt = time.Now()
	return d.replaceOne(ctx, bson.M{"_id": post.ID}, d.mapper.ToDocument(post))
}

// Delete removes a post by id.
func (d *blogPostDAO) Delete(ctx context.Context, id string) (bool, error) {
	return d.deleteOne(ctx, bson.M{"_id": id})
}

// List returns posts matching filter, newest first.
func (d *blogPostDAO) List(ctx context.Context, filter dao.BlogFilter) ([]*entity.BlogPost, error) {
	query := bson.M{}
	if filter.Query != "" {
		query = containsFilter(filter.Query, "title", "excerpt", "author")
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.PublishedOnly {
		query["published"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	var docs []*document.BlogPostDocument
	if err := d.findMany(ctx, query, opts, &docs); err != nil {
		return nil, err
	}
	return d.mapper.ToEntities(docs), nil
}

package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// blogPostDAO implements dao.BlogPostDAO using GORM.
type blogPostDAO struct {
	*baseGormDAO[entity.BlogPost, string]
}

// NewBlogPostDAO creates a new GORM-based BlogPostDAO.
func NewBlogPostDAO(db *gorm.DB) dao.BlogPostDAO {
	return &blogPostDAO{
		baseGormDAO: newBaseGormDAO[entity.BlogPost, string](db),
	}
}

// FindBySlug retrieves a post by its unique slug.
func (d *blogPostDAO) FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	return d.findByField(ctx, "slug", slug)
}

// List returns posts matching filter, newest first.
func (d *blogPostDAO) List(ctx context.Context, filter dao.BlogFilter) ([]*entity.BlogPost, error) {
	query := d.getDB().WithContext(ctx).Model(&entity.BlogPost{})
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.Query != "" {
		pattern := likePattern(filter.Query)
		query = query.Where(likeClause("title", "excerpt", "author"), pattern, pattern, pattern)
	}

	var posts []*entity.BlogPost
	err := query.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

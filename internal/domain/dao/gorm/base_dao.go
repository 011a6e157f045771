// Package gorm provides GORM-based DAO implementations for SQL databases
// (MySQL, PostgreSQL, SQLite).
package gorm

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// baseGormDAO provides the CRUD operations shared by record DAOs.
type baseGormDAO[T any, ID comparable] struct {
	db *gorm.DB
}

func newBaseGormDAO[T any, ID comparable](db *gorm.DB) *baseGormDAO[T, ID] {
	return &baseGormDAO[T, ID]{db: db}
}

// Create inserts a new entity.
func (d *baseGormDAO[T, ID]) Create(ctx context.Context, entity *T) error {
	return d.db.WithContext(ctx).Create(entity).Error
}

// FindByID returns nil, nil if the entity is not found.
func (d *baseGormDAO[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	return d.findByField(ctx, "id", id)
}

// Update replaces an existing entity.
func (d *baseGormDAO[T, ID]) Update(ctx context.Context, entity *T) error {
	return d.db.WithContext(ctx).Save(entity).Error
}

// Delete removes an entity by its ID and reports whether a row was removed.
func (d *baseGormDAO[T, ID]) Delete(ctx context.Context, id ID) (bool, error) {
	var model T
	result := d.db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	return result.RowsAffected > 0, result.Error
}

// Count returns the total number of entities.
func (d *baseGormDAO[T, ID]) Count(ctx context.Context) (int64, error) {
	var count int64
	var model T
	err := d.db.WithContext(ctx).Model(&model).Count(&count).Error
	return count, err
}

// ExistsBy checks if an entity exists by a field value.
func (d *baseGormDAO[T, ID]) ExistsBy(ctx context.Context, field string, value any) (bool, error) {
	var count int64
	var model T
	err := d.db.WithContext(ctx).
		Model(&model).
		Where(field+" = ?", value).
		Count(&count).Error
	return count > 0, err
}

func (d *baseGormDAO[T, ID]) getDB() *gorm.DB {
	return d.db
}

func (d *baseGormDAO[T, ID]) findByField(ctx context.Context, field string, value any) (*T, error) {
	var entity T
	err := d.db.WithContext(ctx).Where(field+" = ?", value).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// likeEscape is the escape character used in every LIKE clause. A
// backslash is not portable: MySQL treats it as a string-literal escape.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")

// likePattern builds a case-insensitive substring pattern in which % and _
// match themselves. Pair it with likeClause.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// likeClause matches pattern against any of columns, ignoring case
func likeClause(columns ...string) string {
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, "LOWER("+col+") LIKE ? ESCAPE '"+likeEscape+"'")
	}
	return strings.Join(parts, " OR ")
}

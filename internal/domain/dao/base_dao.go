// Package dao defines data access interfaces. Implementations live in the
// gorm (MySQL, PostgreSQL, SQLite) and mongo subpackages.
package dao

import (
	"context"
	"errors"
)

// ErrVersionMismatch is returned by conditional writes when the stored
// version differs from the expected one.
var ErrVersionMismatch = errors.New("dao: version mismatch")

// AnyVersion disables the version check on a conditional write.
const AnyVersion int64 = -1

// BaseDAO defines common CRUD operations for record DAOs.
// T is the entity type, ID is the identifier type.
type BaseDAO[T any, ID comparable] interface {
	// Create inserts a new entity.
	Create(ctx context.Context, entity *T) error

	// FindByID returns nil, nil if the entity is not found.
	FindByID(ctx context.Context, id ID) (*T, error)

	// Update replaces an existing entity.
	Update(ctx context.Context, entity *T) error

	// Delete removes an entity and reports whether it existed.
	Delete(ctx context.Context, id ID) (bool, error)

	// Count returns the total number of entities.
	Count(ctx context.Context) (int64, error)

	// ExistsBy checks if an entity exists by a field value.
	ExistsBy(ctx context.Context, field string, value any) (bool, error)
}

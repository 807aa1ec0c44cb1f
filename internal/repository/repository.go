package repository

import (
	"context"

	"gorm.io/gorm"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// CRUD is the persistence contract shared by every entity repository,
// parametrized over the entity and its identity type. FindByID reports a
// missing row as gorm.ErrRecordNotFound; Delete reports it as false. Both
// are results, not failures.
type CRUD[T any, ID any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id ID) (*T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id ID) (bool, error)
}

// gormRepository is the single generic implementation behind all entity
// repositories. pk names the primary key column because not every table
// calls it "id".
type gormRepository[T any, ID any] struct {
	db *gorm.DB
	pk string
}

func newGormRepository[T any, ID any](db *gorm.DB, pk string) gormRepository[T, ID] {
	return gormRepository[T, ID]{db: db, pk: pk}
}

// Create inserts the entity and fills server-assigned fields in place.
func (r gormRepository[T, ID]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// FindByID performs a point lookup by primary key.
func (r gormRepository[T, ID]) FindByID(ctx context.Context, id ID) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, r.pk+" = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// normalizePage applies the paging defaults. Negative values fall back
// to the defaults; an explicit zero limit stays zero and selects no rows.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = defaultSkip
	}
	if limit < 0 {
		limit = defaultLimit
	}
	return skip, limit
}

// List returns a page of rows in primary-key order. No upper bound is
// applied to limit.
func (r gormRepository[T, ID]) List(ctx context.Context, skip, limit int) ([]T, error) {
	skip, limit = normalizePage(skip, limit)
	var entities []T
	err := r.db.WithContext(ctx).Order(r.pk).Offset(skip).Limit(limit).Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// Save writes back all fields of an already-loaded entity.
func (r gormRepository[T, ID]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete removes the row and reports whether one existed.
func (r gormRepository[T, ID]) Delete(ctx context.Context, id ID) (bool, error) {
	res := r.db.WithContext(ctx).Delete(new(T), r.pk+" = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

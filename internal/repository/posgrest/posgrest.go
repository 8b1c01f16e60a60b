package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Repository is a generic GORM-based repository.
// It provides standard CRUD operations for any entity type T.
type Repository[T any] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the underlying connection to service specific repositories.
func (r *Repository[T]) DB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create inserts a new entity into the database.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetAll retrieves all entities of type T from the database.
func (r *Repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

// GetByID retrieves a single entity by its ID.
func (r *Repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// GetBy retrieves entities matching a specific field value.
// The key parameter is a column name.
func (r *Repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(map[string]interface{}{key: value}).Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

// GetOneBy returns the first entity matching every column in conds.
func (r *Repository[T]) GetOneBy(ctx context.Context, conds map[string]interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(conds).First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

// Count returns how many rows match conds.
func (r *Repository[T]) Count(ctx context.Context, conds map[string]interface{}) (int64, error) {
	var (
		entity T
		n      int64
	)
	err := r.db.WithContext(ctx).Model(&entity).Where(conds).Count(&n).Error
	return n, err
}

// Update saves every field of an existing entity identified by ID.
func (r *Repository[T]) Update(ctx context.Context, entity *T, id string) error {
	res := r.db.WithContext(ctx).Model(entity).Where("id = ?", id).Select("*").Updates(entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entity by its ID.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

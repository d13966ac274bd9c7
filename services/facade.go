package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Facade is the persistence capability set the services need for one
// entity type. Implementations give last-write-wins semantics.
type Facade[T any] interface {
	Find(ctx context.Context, id uint) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Edit(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
}

// GormFacade implements Facade on a gorm connection.
type GormFacade[T any] struct {
	DB *gorm.DB
}

func NewGormFacade[T any](db *gorm.DB) *GormFacade[T] {
	return &GormFacade[T]{DB: db}
}

func (f *GormFacade[T]) Find(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := f.DB.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %d: %w", id, err)
	}
	return &entity, nil
}

func (f *GormFacade[T]) FindAll(ctx context.Context) ([]T, error) {
	list := []T{}
	if err := f.DB.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return list, nil
}

func (f *GormFacade[T]) Create(ctx context.Context, entity *T) error {
	if err := f.DB.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Edit overwrites every column but created_at of the row whose primary key
// matches entity.
func (f *GormFacade[T]) Edit(ctx context.Context, entity *T) error {
	res := f.DB.WithContext(ctx).Model(entity).Select("*").Omit("created_at").Updates(entity)
	if res.Error != nil {
		return fmt.Errorf("edit: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *GormFacade[T]) Remove(ctx context.Context, entity *T) error {
	if err := f.DB.WithContext(ctx).Delete(entity).Error; err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}

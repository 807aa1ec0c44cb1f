package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "cardbank/internal/errors"
	"cardbank/internal/model"
	"cardbank/internal/repository"
)

// CRUDService is the transport-facing contract shared by every entity
// family. Each method maps onto exactly one repository call.
type CRUDService[T any, ID comparable] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	Get(ctx context.Context, id ID) (*T, error)
	List(ctx context.Context, skip, limit int) ([]T, error)
	Update(ctx context.Context, id ID, patch model.Patch[T]) (*T, error)
	Delete(ctx context.Context, id ID) (bool, error)
}

// crudService is the single generic implementation instantiated per
// entity. It translates the store's not-found sentinel into
// apperrors.ErrNotFound and otherwise passes repository results through.
type crudService[T any, ID comparable] struct {
	repo repository.CRUD[T, ID]
}

func (s *crudService[T, ID]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return entity, nil
}

func (s *crudService[T, ID]) Get(ctx context.Context, id ID) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return entity, nil
}

func (s *crudService[T, ID]) List(ctx context.Context, skip, limit int) ([]T, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update loads the entity, merges the supplied fields and writes it back.
// An absent target surfaces as apperrors.ErrNotFound without a write.
func (s *crudService[T, ID]) Update(ctx context.Context, id ID, patch model.Patch[T]) (*T, error) {
	entity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(entity)
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("save: %w", err)
	}
	return entity, nil
}

func (s *crudService[T, ID]) Delete(ctx context.Context, id ID) (bool, error) {
	return s.repo.Delete(ctx, id)
}

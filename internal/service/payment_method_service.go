package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "cardbank/internal/errors"
	"cardbank/internal/model"
	"cardbank/internal/repository"
)

// PaymentMethodService handles payment method operations. Every read,
// update and delete is gated on the caller-supplied user owning the
// record; a mismatch reads as not-found so one user cannot learn whether
// another user's record exists.
type PaymentMethodService interface {
	Create(ctx context.Context, method *model.PaymentMethod) (*model.PaymentMethod, error)
	ListByUser(ctx context.Context, user uuid.UUID) ([]model.PaymentMethod, error)
	Update(ctx context.Context, user, id uuid.UUID, patch model.PaymentMethodPatch) (*model.PaymentMethod, error)
	Delete(ctx context.Context, user, id uuid.UUID) error
}

type paymentMethodService struct {
	repo repository.PaymentMethodRepository
}

// NewPaymentMethodService creates a new payment method service.
func NewPaymentMethodService(repo repository.PaymentMethodRepository) PaymentMethodService {
	return &paymentMethodService{repo: repo}
}

// Create stores a new payment method for its owning user.
func (s *paymentMethodService) Create(ctx context.Context, method *model.PaymentMethod) (*model.PaymentMethod, error) {
	if err := s.repo.Create(ctx, method); err != nil {
		return nil, fmt.Errorf("create payment method: %w", err)
	}
	return method, nil
}

// ListByUser returns the payment methods owned by the given user.
func (s *paymentMethodService) ListByUser(ctx context.Context, user uuid.UUID) ([]model.PaymentMethod, error) {
	return s.repo.ListByUser(ctx, user)
}

// Update applies a partial update after the ownership check.
func (s *paymentMethodService) Update(ctx context.Context, user, id uuid.UUID, patch model.PaymentMethodPatch) (*model.PaymentMethod, error) {
	method, err := s.findOwned(ctx, user, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(method)
	if err := s.repo.Save(ctx, method); err != nil {
		return nil, fmt.Errorf("save payment method: %w", err)
	}
	return method, nil
}

// Delete removes the record after the ownership check.
func (s *paymentMethodService) Delete(ctx context.Context, user, id uuid.UUID) error {
	if _, err := s.findOwned(ctx, user, id); err != nil {
		return err
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete payment method: %w", err)
	}
	if !ok {
		return apperrors.ErrNotFound
	}
	return nil
}

// findOwned looks the record up and hides it when the caller is not the
// owner.
func (s *paymentMethodService) findOwned(ctx context.Context, user, id uuid.UUID) (*model.PaymentMethod, error) {
	method, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	if method.User != user {
		return nil, apperrors.ErrNotFound
	}
	return method, nil
}

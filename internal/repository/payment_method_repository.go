package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cardbank/internal/model"
)

// PaymentMethodRepository defines payment method persistence operations.
type PaymentMethodRepository interface {
	CRUD[model.PaymentMethod, uuid.UUID]
	ListByUser(ctx context.Context, user uuid.UUID) ([]model.PaymentMethod, error)
}

type paymentMethodRepository struct {
	gormRepository[model.PaymentMethod, uuid.UUID]
}

// NewPaymentMethodRepository creates a new payment method repository.
func NewPaymentMethodRepository(db *gorm.DB) PaymentMethodRepository {
	return paymentMethodRepository{newGormRepository[model.PaymentMethod, uuid.UUID](db, "uuid")}
}

// ListByUser returns every payment method owned by the given user.
func (r paymentMethodRepository) ListByUser(ctx context.Context, user uuid.UUID) ([]model.PaymentMethod, error) {
	var methods []model.PaymentMethod
	// "user" needs quoting, it is a reserved word in postgres
	err := r.db.WithContext(ctx).Where(`"user" = ?`, user).Find(&methods).Error
	if err != nil {
		return nil, err
	}
	return methods, nil
}

package repository

import (
	"gorm.io/gorm"

	"cardbank/internal/model"
)

// CreditCardRepository defines credit card persistence operations.
type CreditCardRepository interface {
	CRUD[model.CreditCard, uint]
}

// DebitCardRepository defines debit card persistence operations.
type DebitCardRepository interface {
	CRUD[model.DebitCard, uint]
}

// NewCreditCardRepository creates a new credit card repository.
func NewCreditCardRepository(db *gorm.DB) CreditCardRepository {
	return newGormRepository[model.CreditCard, uint](db, "id")
}

// NewDebitCardRepository creates a new debit card repository.
func NewDebitCardRepository(db *gorm.DB) DebitCardRepository {
	return newGormRepository[model.DebitCard, uint](db, "id")
}

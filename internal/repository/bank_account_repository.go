package repository

import (
	"gorm.io/gorm"

	"cardbank/internal/model"
)

// BankAccountRepository defines bank account persistence operations.
type BankAccountRepository interface {
	CRUD[model.BankAccount, uint]
}

// NewBankAccountRepository creates a new bank account repository.
func NewBankAccountRepository(db *gorm.DB) BankAccountRepository {
	return newGormRepository[model.BankAccount, uint](db, "id")
}

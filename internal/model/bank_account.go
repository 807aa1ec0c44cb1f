package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BankAccount represents a customer account holding a balance.
type BankAccount struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OwnerName     string          `json:"owner_name" gorm:"size:255;not null"`
	AccountNumber string          `json:"account_number" gorm:"size:64;uniqueIndex"`
	Balance       decimal.Decimal `json:"balance" gorm:"type:numeric(20,2);not null;default:0"`
	IsActive      bool            `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BeforeCreate generates an account number when none was supplied and pins
// the timestamps to UTC.
func (a *BankAccount) BeforeCreate(tx *gorm.DB) error {
	if a.AccountNumber == "" {
		a.AccountNumber = uuid.NewString()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

// BeforeUpdate keeps UpdatedAt in UTC.
func (a *BankAccount) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// BankAccountPatch carries a partial update. Nil fields are absent and
// leave the stored value untouched.
type BankAccountPatch struct {
	OwnerName     *string          `json:"owner_name" validate:"omitempty,min=1"`
	AccountNumber *string          `json:"account_number" validate:"omitempty,min=1"`
	Balance       *decimal.Decimal `json:"balance"`
}

// Apply merges the supplied fields into the account.
func (p BankAccountPatch) Apply(a *BankAccount) {
	if p.OwnerName != nil {
		a.OwnerName = *p.OwnerName
	}
	if p.AccountNumber != nil {
		a.AccountNumber = *p.AccountNumber
	}
	if p.Balance != nil {
		a.Balance = *p.Balance
	}
}

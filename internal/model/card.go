package model

import (
	"github.com/shopspring/decimal"
)

// CreditCard is a credit card issued against a bank account. AccountID is
// not declared as a database foreign key and no existence check is made
// when creating a card, mirroring the store layout this service inherited.
type CreditCard struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	AccountID   uint            `json:"account_id" gorm:"index;not null"`
	Number      string          `json:"number" gorm:"size:19;not null"`
	Holder      string          `json:"holder" gorm:"size:255;not null"`
	Expiration  Date            `json:"expiration"`
	CVV         string          `json:"cvv" gorm:"size:4;not null"`
	CreditLimit decimal.Decimal `json:"credit_limit" gorm:"type:numeric(20,2);not null;default:0"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
}

// DebitCard is a debit card issued against a bank account.
type DebitCard struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	AccountID  uint   `json:"account_id" gorm:"index;not null"`
	Number     string `json:"number" gorm:"size:19;not null"`
	Holder     string `json:"holder" gorm:"size:255;not null"`
	Expiration Date   `json:"expiration"`
	CVV        string `json:"cvv" gorm:"size:4;not null"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}

// CreditCardPatch carries a partial credit card update.
type CreditCardPatch struct {
	Number      *string          `json:"number" validate:"omitempty,min=1"`
	Holder      *string          `json:"holder" validate:"omitempty,min=1"`
	Expiration  *Date            `json:"expiration"`
	CVV         *string          `json:"cvv" validate:"omitempty,len=3,numeric"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
}

// Apply merges the supplied fields into the card.
func (p CreditCardPatch) Apply(c *CreditCard) {
	if p.Number != nil {
		c.Number = *p.Number
	}
	if p.Holder != nil {
		c.Holder = *p.Holder
	}
	if p.Expiration != nil {
		c.Expiration = *p.Expiration
	}
	if p.CVV != nil {
		c.CVV = *p.CVV
	}
	if p.CreditLimit != nil {
		c.CreditLimit = *p.CreditLimit
	}
}

// DebitCardPatch carries a partial debit card update.
type DebitCardPatch struct {
	Number     *string `json:"number" validate:"omitempty,min=1"`
	Holder     *string `json:"holder" validate:"omitempty,min=1"`
	Expiration *Date   `json:"expiration"`
	CVV        *string `json:"cvv" validate:"omitempty,len=3,numeric"`
	IsActive   *bool   `json:"is_active"`
}

// Apply merges the supplied fields into the card.
func (p DebitCardPatch) Apply(c *DebitCard) {
	if p.Number != nil {
		c.Number = *p.Number
	}
	if p.Holder != nil {
		c.Holder = *p.Holder
	}
	if p.Expiration != nil {
		c.Expiration = *p.Expiration
	}
	if p.CVV != nil {
		c.CVV = *p.CVV
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}

package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentType enumerates the supported payment method kinds.
type PaymentType string

const (
	PaymentTypeCredit PaymentType = "credit"
	PaymentTypeDebit  PaymentType = "debit"
)

// PaymentMethod is a stored card a user can pay with. Ownership checks
// against the User column gate every read, update and delete.
type PaymentMethod struct {
	UUID           uuid.UUID   `json:"uuid" gorm:"type:uuid;primaryKey"`
	User           uuid.UUID   `json:"user" gorm:"column:user;type:uuid;index;not null"`
	PaymentType    PaymentType `json:"payment_type" gorm:"size:8;not null"`
	OwnerName      string      `json:"owner_name" gorm:"size:100;not null"`
	CardNumber     string      `json:"card_number" gorm:"size:16;not null"`
	ExpirationDate string      `json:"expiration_date" gorm:"size:7;not null"`
	SecurityCode   string      `json:"security_code" gorm:"size:3;not null"`
}

// BeforeCreate assigns the identity before inserting.
func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == uuid.Nil {
		p.UUID = uuid.New()
	}
	return nil
}

// PaymentMethodPatch carries a partial payment method update. The owning
// user is never patchable.
type PaymentMethodPatch struct {
	PaymentType    *PaymentType `json:"payment_type" validate:"omitempty,oneof=credit debit"`
	OwnerName      *string      `json:"owner_name" validate:"omitempty,min=1,max=100"`
	CardNumber     *string      `json:"card_number" validate:"omitempty,len=16,numeric"`
	ExpirationDate *string      `json:"expiration_date" validate:"omitempty,mmyyyy"`
	SecurityCode   *string      `json:"security_code" validate:"omitempty,len=3,numeric"`
}

// Apply merges the supplied fields into the payment method.
func (p PaymentMethodPatch) Apply(m *PaymentMethod) {
	if p.PaymentType != nil {
		m.PaymentType = *p.PaymentType
	}
	if p.OwnerName != nil {
		m.OwnerName = *p.OwnerName
	}
	if p.CardNumber != nil {
		m.CardNumber = *p.CardNumber
	}
	if p.ExpirationDate != nil {
		m.ExpirationDate = *p.ExpirationDate
	}
	if p.SecurityCode != nil {
		m.SecurityCode = *p.SecurityCode
	}
}

package service

import (
	"cardbank/internal/model"
	"cardbank/internal/repository"
)

// CreditCardService handles credit card operations.
type CreditCardService = CRUDService[model.CreditCard, uint]

// DebitCardService handles debit card operations.
type DebitCardService = CRUDService[model.DebitCard, uint]

// NewCreditCardService creates a new credit card service.
func NewCreditCardService(repo repository.CreditCardRepository) CreditCardService {
	return &crudService[model.CreditCard, uint]{repo: repo}
}

// NewDebitCardService creates a new debit card service.
func NewDebitCardService(repo repository.DebitCardRepository) DebitCardService {
	return &crudService[model.DebitCard, uint]{repo: repo}
}

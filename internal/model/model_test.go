package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankAccount_BeforeCreate(t *testing.T) {
	account := &BankAccount{OwnerName: "Alice"}
	require.NoError(t, account.BeforeCreate(nil))

	generated, err := uuid.Parse(account.AccountNumber)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, generated)
	assert.Equal(t, time.UTC, account.CreatedAt.Location())
	assert.Equal(t, account.CreatedAt, account.UpdatedAt)

	// a supplied account number is kept
	account = &BankAccount{OwnerName: "Bob", AccountNumber: "acc-789"}
	require.NoError(t, account.BeforeCreate(nil))
	assert.Equal(t, "acc-789", account.AccountNumber)
}

func TestPaymentMethod_BeforeCreate(t *testing.T) {
	method := &PaymentMethod{User: uuid.New()}
	require.NoError(t, method.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, method.UUID)

	existing := uuid.New()
	method = &PaymentMethod{UUID: existing}
	require.NoError(t, method.BeforeCreate(nil))
	assert.Equal(t, existing, method.UUID)
}

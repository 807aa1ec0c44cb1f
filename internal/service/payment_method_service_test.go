package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "cardbank/internal/errors"
	"cardbank/internal/model"
)

// MockPaymentMethodRepository is a mock implementation of PaymentMethodRepository.
type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, method *model.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) List(ctx context.Context, skip, limit int) ([]model.PaymentMethod, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) Save(ctx context.Context, method *model.PaymentMethod) error {
	args := m.Called(ctx, method)
	return args.Error(0)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListByUser(ctx context.Context, user uuid.UUID) ([]model.PaymentMethod, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PaymentMethod), args.Error(1)
}

func TestPaymentMethodService_Create(t *testing.T) {
	repo := new(MockPaymentMethodRepository)
	svc := NewPaymentMethodService(repo)

	owner := uuid.New()
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.PaymentMethod")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.PaymentMethod).UUID = uuid.New()
		}).
		Return(nil)

	created, err := svc.Create(context.Background(), &model.PaymentMethod{
		User:           owner,
		PaymentType:    model.PaymentTypeCredit,
		OwnerName:      "Alice",
		CardNumber:     "4111111111111111",
		ExpirationDate: "05/2027",
		SecurityCode:   "123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.UUID)
	assert.Equal(t, owner, created.User)
	repo.AssertExpectations(t)
}

func TestPaymentMethodService_OwnershipGate(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	id := uuid.New()
	stored := &model.PaymentMethod{
		UUID:           id,
		User:           owner,
		PaymentType:    model.PaymentTypeCredit,
		OwnerName:      "Alice",
		CardNumber:     "4111111111111111",
		ExpirationDate: "05/2027",
		SecurityCode:   "123",
	}

	t.Run("update by another user reads as not found", func(t *testing.T) {
		repo := new(MockPaymentMethodRepository)
		svc := NewPaymentMethodService(repo)
		repo.On("FindByID", mock.Anything, id).Return(stored, nil)

		name := "Mallory"
		_, err := svc.Update(context.Background(), stranger, id, model.PaymentMethodPatch{OwnerName: &name})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("delete by another user reads as not found and keeps the record", func(t *testing.T) {
		repo := new(MockPaymentMethodRepository)
		svc := NewPaymentMethodService(repo)
		repo.On("FindByID", mock.Anything, id).Return(stored, nil)

		err := svc.Delete(context.Background(), stranger, id)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("delete by the owner succeeds", func(t *testing.T) {
		repo := new(MockPaymentMethodRepository)
		svc := NewPaymentMethodService(repo)
		repo.On("FindByID", mock.Anything, id).Return(stored, nil)
		repo.On("Delete", mock.Anything, id).Return(true, nil)

		require.NoError(t, svc.Delete(context.Background(), owner, id))
		repo.AssertExpectations(t)
	})

	t.Run("missing record reads as not found", func(t *testing.T) {
		repo := new(MockPaymentMethodRepository)
		svc := NewPaymentMethodService(repo)
		missing := uuid.New()
		repo.On("FindByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)

		err := svc.Delete(context.Background(), owner, missing)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPaymentMethodService_Update(t *testing.T) {
	owner := uuid.New()
	id := uuid.New()

	repo := new(MockPaymentMethodRepository)
	svc := NewPaymentMethodService(repo)

	stored := &model.PaymentMethod{
		UUID:           id,
		User:           owner,
		PaymentType:    model.PaymentTypeCredit,
		OwnerName:      "Alice",
		CardNumber:     "4111111111111111",
		ExpirationDate: "05/2027",
		SecurityCode:   "123",
	}
	repo.On("FindByID", mock.Anything, id).Return(stored, nil)
	repo.On("Save", mock.Anything, stored).Return(nil)

	expiration := "09/2031"
	updated, err := svc.Update(context.Background(), owner, id, model.PaymentMethodPatch{
		ExpirationDate: &expiration,
	})

	require.NoError(t, err)
	assert.Equal(t, "09/2031", updated.ExpirationDate)
	assert.Equal(t, "Alice", updated.OwnerName)
	assert.Equal(t, owner, updated.User)
	repo.AssertExpectations(t)
}

func TestPaymentMethodService_ListByUser(t *testing.T) {
	owner := uuid.New()
	repo := new(MockPaymentMethodRepository)
	svc := NewPaymentMethodService(repo)

	stored := []model.PaymentMethod{{UUID: uuid.New(), User: owner}}
	repo.On("ListByUser", mock.Anything, owner).Return(stored, nil)

	methods, err := svc.ListByUser(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, methods, 1)
	repo.AssertExpectations(t)
}

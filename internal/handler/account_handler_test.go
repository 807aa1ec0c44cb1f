package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "cardbank/internal/errors"
	"cardbank/internal/handler"
	"cardbank/internal/model"
	"cardbank/internal/router"
)

// MockAccountService is a mock implementation of service.AccountService.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Create(ctx context.Context, account *model.BankAccount) (*model.BankAccount, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockAccountService) Get(ctx context.Context, id uint) (*model.BankAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockAccountService) List(ctx context.Context, skip, limit int) ([]model.BankAccount, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BankAccount), args.Error(1)
}

func (m *MockAccountService) Update(ctx context.Context, id uint, patch model.Patch[model.BankAccount]) (*model.BankAccount, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankAccount), args.Error(1)
}

func (m *MockAccountService) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = router.NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealth(t *testing.T) {
	c, rec := newContext(t, http.MethodGet, "/health", "")
	require.NoError(t, handler.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
}

func TestAccountHandler_Create(t *testing.T) {
	svc := new(MockAccountService)
	h := handler.NewAccountHandler(svc)

	svc.On("Create", mock.Anything, mock.AnythingOfType("*model.BankAccount")).
		Return(&model.BankAccount{
			ID:            1,
			OwnerName:     "Alice",
			AccountNumber: "acc-123",
			Balance:       decimal.NewFromFloat(100.0),
			IsActive:      true,
		}, nil)

	c, rec := newContext(t, http.MethodPost, "/api/v1/bank", `{"owner_name":"Alice","balance":100.0}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"owner_name":"Alice"`)
	assert.Contains(t, rec.Body.String(), `"is_active":true`)
	svc.AssertExpectations(t)
}

func TestAccountHandler_CreateValidation(t *testing.T) {
	svc := new(MockAccountService)
	h := handler.NewAccountHandler(svc)

	c, _ := newContext(t, http.MethodPost, "/api/v1/bank", `{"balance":100.0}`)
	err := h.Create(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)
	resp, ok := httpErr.Message.(apperrors.ErrorResponse)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Contains(t, resp.Error, "validation failed")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountHandler_GetAbsentIsNull(t *testing.T) {
	svc := new(MockAccountService)
	h := handler.NewAccountHandler(svc)
	svc.On("Get", mock.Anything, uint(42)).Return(nil, apperrors.ErrNotFound)

	c, rec := newContext(t, http.MethodGet, "/api/v1/bank/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

func TestAccountHandler_GetInvalidID(t *testing.T) {
	svc := new(MockAccountService)
	h := handler.NewAccountHandler(svc)

	c, _ := newContext(t, http.MethodGet, "/api/v1/bank/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_ListDefaults(t *testing.T) {
	svc := new(MockAccountService)
	h := handler.NewAccountHandler(svc)
	svc.On("List", mock.Anything, 0, 10).Return([]model.BankAccount{}, nil)

	c, rec := newContext(t, http.MethodGet, "/api/v1/bank", "")
	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestAccountHandler_ListExplicitPage(t *testing.T) {
	svc := new(MockAccountService)
	h := handler.NewAccountHandler(svc)
	svc.On("List", mock.Anything, 5, 100).Return([]model.BankAccount{}, nil)

	c, _ := newContext(t, http.MethodGet, "/api/v1/bank?skip=5&limit=100", "")
	require.NoError(t, h.List(c))
	svc.AssertExpectations(t)
}

func TestAccountHandler_Delete(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
		want   string
	}{
		{name: "existing", exists: true, want: "true\n"},
		{name: "missing", exists: false, want: "false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockAccountService)
			h := handler.NewAccountHandler(svc)
			svc.On("Delete", mock.Anything, uint(1)).Return(tt.exists, nil)

			c, rec := newContext(t, http.MethodDelete, "/api/v1/bank/1", "")
			c.SetParamNames("id")
			c.SetParamValues("1")

			require.NoError(t, h.Delete(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestAccountHandler_UpdateAbsentIsNull(t *testing.T) {
	svc := new(MockAccountService)
	h := handler.NewAccountHandler(svc)
	svc.On("Update", mock.Anything, uint(9), mock.Anything).Return(nil, apperrors.ErrNotFound)

	c, rec := newContext(t, http.MethodPatch, "/api/v1/bank/9", `{"balance":150.0}`)
	c.SetParamNames("id")
	c.SetParamValues("9")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null\n", rec.Body.String())
}

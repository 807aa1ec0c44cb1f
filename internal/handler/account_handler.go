package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "cardbank/internal/errors"
	"cardbank/internal/model"
	"cardbank/internal/service"
)

// AccountHandler handles bank account endpoints.
type AccountHandler struct {
	svc service.AccountService
}

// NewAccountHandler creates a new bank account handler.
func NewAccountHandler(svc service.AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// CreateBankAccountRequest represents a bank account creation payload. The
// account number is generated server-side when omitted.
type CreateBankAccountRequest struct {
	OwnerName     string          `json:"owner_name" validate:"required"`
	AccountNumber string          `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
}

// List godoc
// @Summary List bank accounts
// @Tags bank
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} model.BankAccount
// @Failure 500 {object} errors.ErrorResponse
// @Router /bank [get]
func (h *AccountHandler) List(c echo.Context) error {
	skip, limit := pageParams(c)
	accounts, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, accounts)
}

// Get godoc
// @Summary Get a bank account by id
// @Tags bank
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} model.BankAccount "null when absent"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bank/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	account, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// absent reads as a null body, not an error
			return c.JSON(http.StatusOK, nil)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, account)
}

// Create godoc
// @Summary Create a bank account
// @Tags bank
// @Accept json
// @Produce json
// @Param account body CreateBankAccountRequest true "Account payload"
// @Success 200 {object} model.BankAccount
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bank [post]
func (h *AccountHandler) Create(c echo.Context) error {
	var req CreateBankAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	account := &model.BankAccount{
		OwnerName:     req.OwnerName,
		AccountNumber: req.AccountNumber,
		Balance:       req.Balance,
	}
	created, err := h.svc.Create(c.Request().Context(), account)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// Update godoc
// @Summary Partially update a bank account
// @Tags bank
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param patch body model.BankAccountPatch true "Fields to update"
// @Success 200 {object} model.BankAccount "null when absent"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bank/{id} [patch]
func (h *AccountHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.BankAccountPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&patch); err != nil {
		return validationError(err)
	}

	account, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, account)
}

// Delete godoc
// @Summary Delete a bank account
// @Tags bank
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {boolean} bool "false when the account did not exist"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bank/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ok, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ok)
}

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

// CreditCardHandler handles credit card endpoints.
type CreditCardHandler struct {
	svc service.CreditCardService
}

// NewCreditCardHandler creates a new credit card handler.
func NewCreditCardHandler(svc service.CreditCardService) *CreditCardHandler {
	return &CreditCardHandler{svc: svc}
}

// CreateCreditCardRequest represents a credit card creation payload.
// AccountID is taken as supplied; no bank account existence check is made.
type CreateCreditCardRequest struct {
	AccountID   uint            `json:"account_id" validate:"required"`
	Number      string          `json:"number" validate:"required"`
	Holder      string          `json:"holder" validate:"required"`
	Expiration  model.Date      `json:"expiration"`
	CVV         string          `json:"cvv" validate:"required,len=3,numeric"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// List godoc
// @Summary List credit cards
// @Tags credit_card
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} model.CreditCard
// @Router /credit_card [get]
func (h *CreditCardHandler) List(c echo.Context) error {
	skip, limit := pageParams(c)
	cards, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cards)
}

// Get godoc
// @Summary Get a credit card by id
// @Tags credit_card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} model.CreditCard "null when absent"
// @Router /credit_card/{id} [get]
func (h *CreditCardHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	card, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}

// Create godoc
// @Summary Create a credit card
// @Tags credit_card
// @Accept json
// @Produce json
// @Param card body CreateCreditCardRequest true "Card payload"
// @Success 200 {object} model.CreditCard
// @Router /credit_card [post]
func (h *CreditCardHandler) Create(c echo.Context) error {
	var req CreateCreditCardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}

	expiration := req.Expiration
	if expiration.IsZero() {
		expiration = model.Today()
	}
	card := &model.CreditCard{
		AccountID:   req.AccountID,
		Number:      req.Number,
		Holder:      req.Holder,
		Expiration:  expiration,
		CVV:         req.CVV,
		CreditLimit: req.CreditLimit,
	}
	created, err := h.svc.Create(c.Request().Context(), card)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// Update godoc
// @Summary Partially update a credit card
// @Tags credit_card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param patch body model.CreditCardPatch true "Fields to update"
// @Success 200 {object} model.CreditCard "null when absent"
// @Router /credit_card/{id} [patch]
func (h *CreditCardHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.CreditCardPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&patch); err != nil {
		return validationError(err)
	}

	card, err := h.svc.Update(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, card)
}

// Delete godoc
// @Summary Delete a credit card
// @Tags credit_card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {boolean} bool "false when the card did not exist"
// @Router /credit_card/{id} [delete]
func (h *CreditCardHandler) Delete(c echo.Context) error {
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

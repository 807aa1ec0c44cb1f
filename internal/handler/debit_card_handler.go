package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cardbank/internal/errors"
	"cardbank/internal/model"
	"cardbank/internal/service"
)

// DebitCardHandler handles debit card endpoints.
type DebitCardHandler struct {
	svc service.DebitCardService
}

// NewDebitCardHandler creates a new debit card handler.
func NewDebitCardHandler(svc service.DebitCardService) *DebitCardHandler {
	return &DebitCardHandler{svc: svc}
}

// CreateDebitCardRequest represents a debit card creation payload.
type CreateDebitCardRequest struct {
	AccountID  uint       `json:"account_id" validate:"required"`
	Number     string     `json:"number" validate:"required"`
	Holder     string     `json:"holder" validate:"required"`
	Expiration model.Date `json:"expiration"`
	CVV        string     `json:"cvv" validate:"required,len=3,numeric"`
}

// List godoc
// @Summary List debit cards
// @Tags debit_card
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} model.DebitCard
// @Router /debit_card [get]
func (h *DebitCardHandler) List(c echo.Context) error {
	skip, limit := pageParams(c)
	cards, err := h.svc.List(c.Request().Context(), skip, limit)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, cards)
}

// Get godoc
// @Summary Get a debit card by id
// @Tags debit_card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} model.DebitCard "null when absent"
// @Router /debit_card/{id} [get]
func (h *DebitCardHandler) Get(c echo.Context) error {
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
// @Summary Create a debit card
// @Tags debit_card
// @Accept json
// @Produce json
// @Param card body CreateDebitCardRequest true "Card payload"
// @Success 200 {object} model.DebitCard
// @Router /debit_card [post]
func (h *DebitCardHandler) Create(c echo.Context) error {
	var req CreateDebitCardRequest
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
	card := &model.DebitCard{
		AccountID:  req.AccountID,
		Number:     req.Number,
		Holder:     req.Holder,
		Expiration: expiration,
		CVV:        req.CVV,
	}
	created, err := h.svc.Create(c.Request().Context(), card)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, created)
}

// Update godoc
// @Summary Partially update a debit card
// @Tags debit_card
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Param patch body model.DebitCardPatch true "Fields to update"
// @Success 200 {object} model.DebitCard "null when absent"
// @Router /debit_card/{id} [patch]
func (h *DebitCardHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.DebitCardPatch
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
// @Summary Delete a debit card
// @Tags debit_card
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {boolean} bool "false when the card did not exist"
// @Router /debit_card/{id} [delete]
func (h *DebitCardHandler) Delete(c echo.Context) error {
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

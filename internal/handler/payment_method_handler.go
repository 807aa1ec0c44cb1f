package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "cardbank/internal/errors"
	"cardbank/internal/model"
	"cardbank/internal/service"
)

// PaymentMethodHandler handles payment method endpoints. The owning user
// is supplied as a query parameter on every operation; the record id is
// supplied the same way on update and delete.
type PaymentMethodHandler struct {
	svc service.PaymentMethodService
}

// NewPaymentMethodHandler creates a new payment method handler.
func NewPaymentMethodHandler(svc service.PaymentMethodService) *PaymentMethodHandler {
	return &PaymentMethodHandler{svc: svc}
}

// CreatePaymentMethodRequest represents a payment method creation payload.
type CreatePaymentMethodRequest struct {
	User           string `json:"user" validate:"required,uuid"`
	PaymentType    string `json:"payment_type" validate:"required,oneof=credit debit"`
	OwnerName      string `json:"owner_name" validate:"required,max=100"`
	CardNumber     string `json:"card_number" validate:"required,len=16,numeric"`
	ExpirationDate string `json:"expiration_date" validate:"required,mmyyyy"`
	SecurityCode   string `json:"security_code" validate:"required,len=3,numeric"`
}

// Create godoc
// @Summary Create a payment method
// @Tags payment_method
// @Accept json
// @Produce json
// @Param payment body CreatePaymentMethodRequest true "Payment method payload"
// @Success 201 {object} model.PaymentMethod
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payment_method [post]
func (h *PaymentMethodHandler) Create(c echo.Context) error {
	var req CreatePaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return validationError(err)
	}
	user, err := uuid.Parse(req.User)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
			Error: "invalid user",
			Code:  "INVALID_UUID",
		})
	}

	method := &model.PaymentMethod{
		User:           user,
		PaymentType:    model.PaymentType(req.PaymentType),
		OwnerName:      req.OwnerName,
		CardNumber:     req.CardNumber,
		ExpirationDate: req.ExpirationDate,
		SecurityCode:   req.SecurityCode,
	}
	created, err := h.svc.Create(c.Request().Context(), method)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List the caller's payment methods
// @Tags payment_method
// @Produce json
// @Param user query string true "Owning user UUID"
// @Success 200 {array} model.PaymentMethod
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payment_method [get]
func (h *PaymentMethodHandler) List(c echo.Context) error {
	user, err := queryUUID(c, "user")
	if err != nil {
		return err
	}
	methods, err := h.svc.ListByUser(c.Request().Context(), user)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, methods)
}

// Update godoc
// @Summary Partially update a payment method
// @Tags payment_method
// @Accept json
// @Produce json
// @Param user query string true "Owning user UUID"
// @Param uuid query string true "Payment method UUID"
// @Param patch body model.PaymentMethodPatch true "Fields to update"
// @Success 200 {object} model.PaymentMethod
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payment_method [patch]
func (h *PaymentMethodHandler) Update(c echo.Context) error {
	user, err := queryUUID(c, "user")
	if err != nil {
		return err
	}
	id, err := queryUUID(c, "uuid")
	if err != nil {
		return err
	}
	var patch model.PaymentMethodPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&patch); err != nil {
		return validationError(err)
	}

	method, err := h.svc.Update(c.Request().Context(), user, id, patch)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, method)
}

// Delete godoc
// @Summary Delete a payment method
// @Tags payment_method
// @Param user query string true "Owning user UUID"
// @Param uuid query string true "Payment method UUID"
// @Success 204 "No Content"
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /payment_method [delete]
func (h *PaymentMethodHandler) Delete(c echo.Context) error {
	user, err := queryUUID(c, "user")
	if err != nil {
		return err
	}
	id, err := queryUUID(c, "uuid")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), user, id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

// queryUUID parses a required UUID query parameter, rejecting missing or
// malformed values as unprocessable.
func queryUUID(c echo.Context, name string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(c.QueryParam(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnprocessableEntity, apperrors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_UUID",
		})
	}
	return parsed, nil
}

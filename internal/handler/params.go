package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "cardbank/internal/errors"
)

const (
	defaultSkip  = 0
	defaultLimit = 10
)

// pageParams reads skip/limit query parameters, falling back to the
// defaults. No upper bound is applied to limit.
func pageParams(c echo.Context) (skip, limit int) {
	skip, limit = defaultSkip, defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("skip")); err == nil {
		skip = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		limit = v
	}
	return skip, limit
}

// validationError routes a validator failure through the domain sentinel
// so every handler reports it with the same status and code.
func validationError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(fmt.Errorf("%w: %v", apperrors.ErrValidation, err))
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// pathID parses the numeric id path parameter.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness for the discovery agent probe.
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

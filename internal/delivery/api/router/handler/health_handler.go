package handler

import (
	"net/http"

	"placebook/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the backend is up
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"state": "ok"})
}

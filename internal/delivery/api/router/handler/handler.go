// Package handler contains the echo handlers of the public API.
package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the body into req and validates it. Validation
// errors are returned as-is so the central handler can list the fields.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return errors.WithStack(c.Validate(req))
}

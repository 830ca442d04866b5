package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/zacatour/backend/internal/services"
)

// getUserIDFromContext returns the authenticated user ID stored by the
// auth middleware, or 0 when the request is unauthenticated.
func getUserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get("userID").(uint); ok {
		return id
	}
	return 0
}

// toHTTPError maps service errors onto HTTP status codes.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case services.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storefront/ecommerce-services/internal/api/middleware"
)

// customerIDFromContext returns the id injected by the Auth middleware. A
// missing value means the route was mounted without it.
func customerIDFromContext(c echo.Context) (uint, error) {
	id, ok := c.Get(middleware.CustomerIDKey).(uint)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

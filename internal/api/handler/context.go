package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/billigi/lending-api/internal/core/domain"
)

// actingName returns the display name the Session middleware stored for the
// request. Presence proves the middleware ran.
func actingName(c echo.Context) (string, error) {
	name, _ := c.Get("user_name").(string)
	if name == "" {
		return "", domain.ErrUnauthenticated
	}
	return name, nil
}

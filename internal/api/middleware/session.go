package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/billigi/lending-api/internal/core/domain"
)

// SessionAuthenticator resolves a session cookie value to its live session.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Session, error)
}

// Session requires a valid session cookie and injects the session owner into
// the context as "session", "user_id" and "user_name".
func Session(auth SessionAuthenticator, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(cookieName)
			if err != nil || ck.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}

			sess, err := auth.Authenticate(c.Request().Context(), ck.Value)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired or invalid")
				}
				return err
			}

			c.Set("session", sess)
			c.Set("user_id", sess.UserID)
			c.Set("user_name", sess.UserName)

			return next(c)
		}
	}
}

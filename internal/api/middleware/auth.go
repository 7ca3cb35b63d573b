package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerToken extracts the opaque session token from the Authorization
// header and injects it into the request context under "session_token".
//
// Only presence is checked here. Resolving the token against the session
// store happens in the service layer, because an unresolvable token fails
// differently per operation (401 on writes, 404 on the balance view).
func BearerToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			token := strings.TrimSpace(parts[1])
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "empty bearer token")
			}

			c.Set("session_token", token)
			return next(c)
		}
	}
}

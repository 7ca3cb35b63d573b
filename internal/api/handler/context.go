package handler

import (
	"github.com/labstack/echo/v4"
)

// tokenContextKey is where the bearer-token middleware stashes the extracted
// session token.
const tokenContextKey = "session_token"

// ctxToken returns the bearer token injected by the middleware. Presence was
// already enforced there; an empty value only occurs on unprotected routes.
func ctxToken(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}

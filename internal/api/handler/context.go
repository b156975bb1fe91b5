package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// userIDKey is the echo context key the auth middleware stores the resolved
// user identifier under.
const userIDKey = "user_id"

// ctxUserID extracts the user id injected by the auth middleware and
// fast-fails with 401 when it is absent (presence proves the middleware ran).
func ctxUserID(c echo.Context) (string, error) {
	id, _ := c.Get(userIDKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
	}
	return id, nil
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/ports"
)

// TokenHeader is the request header carrying the bearer token. The API has
// always used this custom header rather than the Authorization Bearer scheme.
const TokenHeader = "x-auth-token"

// Auth verifies the request token and injects the resolved user id into the
// echo context under "user_id".
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token, authorization denied")
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Token is not valid")
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}

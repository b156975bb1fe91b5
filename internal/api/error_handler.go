package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aashnamahajan/DevelopersConnector/internal/core/domain"
)

// fieldErrorsResponse is the envelope for validation-style failures:
// {"errors":[{"msg":...}, ...]}.
type fieldErrorsResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// messageResponse is the single-message envelope used for auth failures,
// profile misses and server errors: {"msg":...}.
type messageResponse struct {
	Msg string `json:"msg"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as the {"errors":[{"msg"}]} envelope.
//   - Maps known domain errors to their status codes and wire messages,
//     keeping the historical quirk that profile misses answer 400, not 404.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, fieldErrorsResponse{Errors: ve.Fields})
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, any) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, messageResponse{Msg: fmt.Sprintf("%v", he.Message)}
	}

	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, fieldErrorsResponse{Errors: []domain.FieldError{{Msg: "User already exists"}}}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, fieldErrorsResponse{Errors: []domain.FieldError{{Msg: "Invalid Credentials"}}}
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, messageResponse{Msg: "Token is not valid"}
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusBadRequest, messageResponse{Msg: "There is no profile for this user"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, messageResponse{Msg: "User not found"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, messageResponse{Msg: "Server Error"}
}

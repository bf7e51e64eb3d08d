package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFromError maps the application error taxonomy onto HTTP status codes.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoPrincipal), errors.Is(err, ErrPrincipalBlocked):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for a failed request. Internal errors
// are masked; everything from the taxonomy carries its own message.
func respondError(ctx echo.Context, err error) error {
	status := StatusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}

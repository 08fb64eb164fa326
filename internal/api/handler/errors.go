package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bgrbarbosa/product-catalog/internal/core/domain"
)

// ErrorStatus maps an error returned by a handler to the HTTP status and the
// message shown to the client. known is false for unexpected errors, whose
// cause must not leak to the client.
func ErrorStatus(err error) (code int, msg string, known bool) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), true
	}

	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "category not found", true
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "product not found", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found", true
	case errors.Is(err, domain.ErrCategoryExists):
		return http.StatusConflict, "category already exists", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists", true
	case errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusUnprocessableEntity, "category does not exist", true
	case errors.Is(err, domain.ErrUnknownRole):
		return http.StatusUnprocessableEntity, err.Error(), true
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials", true
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden", true
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "too many login attempts, try again later", true
	}

	return http.StatusInternalServerError, "internal server error", false
}

func badRequest(msg string) error {
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

func unprocessable(err error) error {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
}

package http

import (
	"errors"
	"net/http"
	"strings"

	"casetrack-backend/internal/domain/fault"

	"github.com/labstack/echo/v4"
)

// writeFault maps the shared error taxonomy onto HTTP statuses. Unknown
// errors become a generic 500 without leaking internals.
func writeFault(c echo.Context, err error) error {
	switch {
	case errors.Is(err, fault.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fault.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fault.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fault.ErrConflict):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, fault.ErrTransient):
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "temporarily unavailable, retry later"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

// ---- helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

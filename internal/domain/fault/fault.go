package fault

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Callers classify failures with errors.Is against these;
// message text is for humans only.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrForbidden  = errors.New("not authorized")
	ErrIntegrity  = errors.New("integrity failure")
	ErrTransient  = errors.New("temporarily unavailable")
)

func Validation(format string, args ...any) error { return wrap(ErrValidation, format, args...) }
func NotFound(format string, args ...any) error   { return wrap(ErrNotFound, format, args...) }
func Conflict(format string, args ...any) error   { return wrap(ErrConflict, format, args...) }
func Forbidden(format string, args ...any) error  { return wrap(ErrForbidden, format, args...) }
func Integrity(format string, args ...any) error  { return wrap(ErrIntegrity, format, args...) }
func Transient(format string, args ...any) error  { return wrap(ErrTransient, format, args...) }

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrLoadNotFound         = errors.New("load not found")
	ErrCompanyNotFound      = errors.New("company not found")
	ErrDriverNotFound       = errors.New("driver not found")
	ErrDispatcherNotFound   = errors.New("dispatcher not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("action not allowed for this actor")
	ErrInvalidTransition = errors.New("invalid status transition: load condition not met")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("user with this email already exists")
)

// Validationf wraps ErrValidation with a human-readable detail so handlers can
// match the kind with errors.Is while still surfacing the message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

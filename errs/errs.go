// Package errs carries the error kinds shared across handlers: validation
// failures rejected before any mutation, credential mismatches collapsed to
// one generic message, and missing references.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for every login failure, whether the
	// email is unknown or the password is wrong, so callers cannot probe
	// which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailTaken   = errors.New("an account with this email already exists")
	ErrCartEmpty    = errors.New("cart is empty")
	ErrNoBuyNowItem = errors.New("no buy-now item pending")
	ErrNotFound     = errors.New("not found")
)

// ValidationError rejects malformed or missing form input. Nothing is
// mutated when one is returned.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func Validation(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

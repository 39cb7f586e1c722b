package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrInvalidAmount     = errors.New("invalid amount, must be greater than zero with at most two decimal places")
	ErrInsufficientFunds = errors.New("insufficient funds")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrProductNotFound = errors.New("product not found")

	ErrSaleNotFound  = errors.New("sale not found")
	ErrMissingFields = errors.New("missing required fields")

	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidAction  = errors.New("invalid action, must be 'approve' or 'flag'")
)

// ErrValidation is matched by every *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError carries one message per offending field, keyed by the
// field's JSON name.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateUsernameError names the username that is already registered. It
// matches ErrDuplicateUsername through errors.Is.
type DuplicateUsernameError struct {
	Username string
}

func (e *DuplicateUsernameError) Error() string {
	return fmt.Sprintf("Username '%s' is already taken.", e.Username)
}

func (e *DuplicateUsernameError) Is(target error) bool {
	return target == ErrDuplicateUsername
}

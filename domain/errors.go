package domain

import (
	"errors"
	"fmt"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateField     = errors.New("duplicate field")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrMissingToken   = errors.New("authorization token required")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Delivery and authorization errors
var (
	ErrMailDelivery = errors.New("mail delivery failed")
	ErrUnauthorized = errors.New("unauthorized access")
)

// DuplicateFieldError reports which unique column a signup collided on.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field: %s", e.Field)
}

// Is makes errors.Is(err, ErrDuplicateField) match any typed duplicate.
func (e *DuplicateFieldError) Is(target error) bool {
	return target == ErrDuplicateField
}

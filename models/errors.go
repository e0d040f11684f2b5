package models

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the stores and handlers. Handlers translate
// these into HTTP responses; none of them is fatal to the process.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)

// ValidationError marks bad or missing user input. It carries the field
// name so the caller can return the user to the right part of the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

package notestore

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notekeeper/internal/models"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrNotFound           = errors.New("not found")
	ErrStorage            = errors.New("storage error")
	ErrCorruptData        = errors.New("corrupt data")
)

// ValidationError names the field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func required(field string) *ValidationError {
	return invalid(field, "must not be empty")
}

// fromFieldError converts a model validation failure; other errors pass through.
func fromFieldError(err error) error {
	var fe *models.FieldError
	if errors.As(err, &fe) {
		return invalid(fe.Field, fe.Message)
	}
	return err
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

func corruptError(key string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCorruptData, key, err)
}

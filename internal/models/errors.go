package models

import (
	"errors"
	"fmt"
)

// ErrMalformed marks stored data that does not decode into valid records.
var ErrMalformed = errors.New("malformed record")

// FieldError reports a field that is missing or invalid.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func required(field string) *FieldError {
	return &FieldError{Field: field, Message: "must not be empty"}
}

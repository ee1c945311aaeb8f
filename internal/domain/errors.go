package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFieldRequired = errors.New("field required")
	ErrFieldTooLong  = errors.New("field too long")
	ErrInvalidValue  = errors.New("invalid value")
	ErrInvalidFormat = errors.New("invalid format")

	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError describes the first rule an entity broke.
type ValidationError struct {
	Field   string
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func required(field string) error {
	return &ValidationError{Field: field, Kind: ErrFieldRequired, Message: "this field is required"}
}

func tooLong(field string, max int) error {
	return &ValidationError{
		Field:   field,
		Kind:    ErrFieldTooLong,
		Message: fmt.Sprintf("ensure this field has no more than %d characters", max),
	}
}

func invalidValue(field, msg string) error {
	return &ValidationError{Field: field, Kind: ErrInvalidValue, Message: msg}
}

func invalidFormat(field, msg string) error {
	return &ValidationError{Field: field, Kind: ErrInvalidFormat, Message: msg}
}

// InvalidReference reports a field pointing at a record that does not exist.
func InvalidReference(field string, id uint64) error {
	return invalidValue(field, fmt.Sprintf("invalid pk %d - object does not exist", id))
}

// MissingField reports a field that was absent from the input altogether.
func MissingField(field string) error {
	return required(field)
}

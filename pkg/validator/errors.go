package validator

import "errors"

var (
	// ErrValidationFailed is matched by every ValidationErrors value.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownFieldType is returned when a rule set names a type the validator does not know.
	ErrUnknownFieldType = errors.New("unknown field type")
)

package formkit

import "errors"

var (
	ErrInvalidSchema  = errors.New("invalid form schema")
	ErrDuplicateField = errors.New("duplicate form field")
	ErrNoFields       = errors.New("form has no fields")
)

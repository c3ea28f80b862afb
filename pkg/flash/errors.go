package flash

import "errors"

var (
	ErrFadeFailed   = errors.New("failed to fade flash container")
	ErrRemoveFailed = errors.New("failed to remove flash container")

	ErrEmptySecret    = errors.New("flash secret cannot be empty")
	ErrInvalidMessage = errors.New("invalid flash message")
	ErrBadSignature   = errors.New("flash cookie signature mismatch")
)

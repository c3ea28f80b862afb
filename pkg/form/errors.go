package form

import "errors"

var (
	// ErrSlotNotFound is returned when a field's error slot is missing from the page.
	ErrSlotNotFound = errors.New("error slot not found")

	// ErrDisplayFailed is returned when a slot exists but could not be updated.
	ErrDisplayFailed = errors.New("failed to update error slot")
)

package dom

import "errors"

var (
	// ErrElementNotFound is returned when an operation targets an id absent from the document.
	ErrElementNotFound = errors.New("element not found")

	// ErrPatchFailed is returned when a mutation could not be streamed to the client.
	ErrPatchFailed = errors.New("failed to patch element")
)

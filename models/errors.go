package models

import "errors"

// Sentinel errors for broad classification. Controllers match these with
// errors.Is to pick a response status.
var (
	// ErrLookupEmpty: the nutrition lookup returned no usable food item.
	ErrLookupEmpty = errors.New("could not fetch nutrition information")

	// ErrInputMissing: a required feedback field is absent or out of range.
	ErrInputMissing = errors.New("missing required input")

	// ErrPersistWrite: the feedback store could not be read or written.
	ErrPersistWrite = errors.New("feedback store unavailable")
)

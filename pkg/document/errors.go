package document

import "errors"

// Package-specific errors.
var (
	// ErrParse is returned when the raw input cannot be decoded at all.
	// It is the only fatal condition in the validation pipeline.
	ErrParse = errors.New("document parse error")

	// ErrNotObject is returned when the top-level value is not a mapping.
	ErrNotObject = errors.New("top-level value must be an object")
)

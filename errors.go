package schemata

import "fmt"

// MalformedInputError reports input text that could not be decoded into
// a top-level mapping.
type MalformedInputError struct {
	// Format is the serialization format, "json" or "yaml".
	Format string

	// Err is the underlying decode error.
	Err error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("invalid %s input: %v", e.Format, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *MalformedInputError) Unwrap() error { return e.Err }

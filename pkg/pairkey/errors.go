package pairkey

import "fmt"

// KeyFormatError reports a key string that does not match the expected
// "('Source', 'Target')" surface syntax.
type KeyFormatError struct {
	// Key is the offending key string.
	Key string
}

func (e *KeyFormatError) Error() string {
	return fmt.Sprintf("invalid edge mapping key format: %q, expected format: \"('Source', 'Target')\"", e.Key)
}

// KeyArityError reports a key that does not decode to exactly two
// entity type names.
type KeyArityError struct {
	// Key is the offending key string.
	Key string
}

func (e *KeyArityError) Error() string {
	return fmt.Sprintf("edge mapping key must have exactly 2 entities: %q", e.Key)
}

// ValueShapeError reports an edge-type list that is not a list of
// strings.
type ValueShapeError struct {
	// Key is the key string whose value is mis-shaped.
	Key string

	// Got describes the shape actually received, e.g. "string".
	Got string
}

func (e *ValueShapeError) Error() string {
	return fmt.Sprintf("edge type list for key %q must be a list of strings, got %s", e.Key, e.Got)
}

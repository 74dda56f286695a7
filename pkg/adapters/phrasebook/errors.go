package phrasebook

import "errors"

var (
	// ErrStyleNotFound is returned when a greeting style is not in the book.
	ErrStyleNotFound = errors.New("greeting style not found")
	// ErrEmptyBook is returned when no file under the root defines a greeting.
	ErrEmptyBook = errors.New("phrasebook has no greetings")
	// ErrInvalidPattern is returned for a malformed doublestar pattern.
	ErrInvalidPattern = errors.New("invalid phrasebook pattern")
)

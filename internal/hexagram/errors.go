package hexagram

import "errors"

var (
	// ErrInvalidBar marks a bar with a non-positive or non-finite price.
	ErrInvalidBar = errors.New("invalid bar")

	// ErrInsufficientData marks a sample too small to derive a hexagram.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrUnknownHexagram marks a lookup key absent from the knowledge base.
	// With a complete table this is unreachable; raising it signals a
	// data-integrity bug rather than a user error.
	ErrUnknownHexagram = errors.New("unknown hexagram key")
)

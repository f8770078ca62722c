package domain

import "errors"

// Sentinel errors for the game core. Callers match them with errors.Is;
// sites that need context wrap them with %w.
var (
	ErrInvalidSize    = errors.New("size must be a positive perfect square")
	ErrOutOfBounds    = errors.New("position out of bounds")
	ErrInvalidValue   = errors.New("value out of range")
	ErrUnsolvable     = errors.New("no valid completion exists")
	ErrUnknownCommand = errors.New("unknown command")
)

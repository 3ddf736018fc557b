package poly

import (
	"errors"
)

var (
	// ErrInvalidArgument is returned when a polynomial is built from an
	// empty coefficient list, a nil coefficient or a negative degree.
	ErrInvalidArgument = errors.New("poly: invalid argument")

	// ErrIndexOutOfRange is returned when a power k lies outside [0, degree].
	ErrIndexOutOfRange = errors.New("poly: index out of range")
)

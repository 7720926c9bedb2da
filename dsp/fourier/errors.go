package fourier

import "errors"

var (
	// ErrSizeMismatch is returned when an input's length does not match the
	// size the transform was constructed with.
	ErrSizeMismatch = errors.New("input length does not match transform size")

	// ErrNilInput is returned when Process receives a nil signal or spectrum.
	ErrNilInput = errors.New("input must not be nil")
)

package discrete

import "errors"

var (
	// ErrEmptySignal is returned when a measurement is undefined on a
	// zero-length signal.
	ErrEmptySignal = errors.New("signal must not be empty")

	// ErrNilNoiseSource is returned when AddNoise is called without a source.
	ErrNilNoiseSource = errors.New("noise source must not be nil")
)

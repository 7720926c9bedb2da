package continuous

import (
	"fmt"
)

// Signal is a symbolic continuous-time signal, a pure function from a time
// index in seconds to a complex amplitude. The zero value is not usable;
// construct signals through the generator factories or combinators.
type Signal struct {
	eval func(t float64) complex128
}

// At evaluates the signal at time t. Evaluation is pure: repeated calls with
// the same t return the same value.
func (s Signal) At(t float64) complex128 {
	return s.eval(t)
}

// Add returns the pointwise sum of two signals.
func Add(s1, s2 Signal) Signal {
	return Signal{eval: func(t float64) complex128 {
		return s1.At(t) + s2.At(t)
	}}
}

// Scale returns the signal multiplied pointwise by a complex constant.
func Scale(s Signal, k complex128) Signal {
	return Signal{eval: func(t float64) complex128 {
		return k * s.At(t)
	}}
}

// Modulate returns the pointwise product of a signal and a carrier.
func Modulate(s, carrier Signal) Signal {
	return Signal{eval: func(t float64) complex128 {
		return s.At(t) * carrier.At(t)
	}}
}

// Sample evaluates the signal at start, start+step, start+2*step, ... for all
// times strictly less than end, yielding floor((end-start)/step) samples.
func Sample(s Signal, start, end, step float64) ([]complex128, error) {
	if step <= 0 {
		return nil, fmt.Errorf("sample step must be > 0: %f", step)
	}
	if start >= end {
		return nil, fmt.Errorf("sample interval must satisfy start < end: [%f, %f)", start, end)
	}

	out := make([]complex128, 0, int((end-start)/step))
	for t := start; t < end; t += step {
		out = append(out, s.At(t))
	}
	return out, nil
}

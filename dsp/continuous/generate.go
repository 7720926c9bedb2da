package continuous

import (
	"math"
	"math/cmplx"
)

// Impulse returns the unit impulse: 1 at t == 0, else 0.
func Impulse() Signal {
	return Signal{eval: func(t float64) complex128 {
		if t == 0 {
			return 1
		}
		return 0
	}}
}

// Step returns the unit step: 1 for t >= 0, else 0.
func Step() Signal {
	return Signal{eval: func(t float64) complex128 {
		if t >= 0 {
			return 1
		}
		return 0
	}}
}

// ComplexExponential returns exp(i*2*pi*freq*(t + offset/2)).
//
// The offset is halved before being added to t so that an offset of one full
// period shifts the phase by pi. Sine and Cosine share this convention.
func ComplexExponential(freqHz, offset float64) Signal {
	w := 2 * math.Pi * freqHz
	return Signal{eval: func(t float64) complex128 {
		return cmplx.Exp(complex(0, w*(t+offset/2)))
	}}
}

// Sine returns a real-valued sine signal with the ComplexExponential phase
// convention.
func Sine(freqHz, offset float64) Signal {
	w := 2 * math.Pi * freqHz
	return Signal{eval: func(t float64) complex128 {
		return complex(math.Sin(w*(t+offset/2)), 0)
	}}
}

// Cosine returns a real-valued cosine signal with the ComplexExponential
// phase convention.
func Cosine(freqHz, offset float64) Signal {
	w := 2 * math.Pi * freqHz
	return Signal{eval: func(t float64) complex128 {
		return complex(math.Cos(w*(t+offset/2)), 0)
	}}
}

// Triangle returns a real-valued periodic triangle signal with a period of
// one second, evaluated as (2*freq*(t+0.5)) mod 2 - 1.
func Triangle(freqHz float64) Signal {
	w := 2 * freqHz
	return Signal{eval: func(t float64) complex128 {
		return complex(math.Mod(w*(t+0.5), 2)-1, 0)
	}}
}

// Square returns a real-valued periodic square signal with a period of one
// second. The value is +1 when freq*t mod 1 falls in (-inf, -0.5) or
// (0, 0.5), and -1 otherwise; exactly 0 and exactly 0.5 resolve to -1.
func Square(freqHz float64) Signal {
	return Signal{eval: func(t float64) complex128 {
		a := math.Mod(freqHz*t, 1)
		if a < -0.5 || (a > 0 && a < 0.5) {
			return 1
		}
		return -1
	}}
}

package testutil

import (
	"math"
	"math/rand"
)

// ComplexImpulse generates a unit impulse at the given position.
func ComplexImpulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// ComplexSine generates a deterministic real-valued sine wave stored as
// complex samples with zero imaginary parts.
func ComplexSine(freqHz, sampleRate, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = complex(amplitude*math.Sin(step*float64(i)), 0)
	}
	return out
}

// RandomComplex generates uniform random complex samples in the unit square
// with a fixed seed for reproducibility.
func RandomComplex(seed int64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

package discrete

import (
	"fmt"
)

// Signal is an immutable finite discrete-time signal: complex samples plus a
// sample rate in samples per second.
type Signal struct {
	data       []complex128
	sampleRate int
}

// NoiseSource yields independent normally distributed real samples. It is
// satisfied by [github.com/cwbudde/algo-signals/dsp/noise.Generator].
type NoiseSource interface {
	SampleNormal(mean, stdDev float64) float64
}

// New creates a signal from complex samples. The sample rate defaults to the
// sample count. The input slice is copied.
func New(data []complex128) *Signal {
	return NewWithRate(data, len(data))
}

// NewWithRate creates a signal from complex samples with an explicit sample
// rate. The input slice is copied.
func NewWithRate(data []complex128, sampleRate int) *Signal {
	d := make([]complex128, len(data))
	copy(d, data)
	return &Signal{data: d, sampleRate: sampleRate}
}

// FromReals creates a signal from real samples with zero imaginary parts.
// The sample rate defaults to the sample count.
func FromReals(data []float64) *Signal {
	d := make([]complex128, len(data))
	for i, x := range data {
		d[i] = complex(x, 0)
	}
	return &Signal{data: d, sampleRate: len(data)}
}

// Len returns the number of stored samples.
func (s *Signal) Len() int {
	return len(s.data)
}

// SampleRate returns the sample rate in samples per second.
func (s *Signal) SampleRate() int {
	return s.sampleRate
}

// At returns the sample at index i, or zero when i is outside [0, Len).
// Shift and Differentiate rely on this zero-fill at the boundaries.
func (s *Signal) At(i int) complex128 {
	if i < 0 || i >= len(s.data) {
		return 0
	}
	return s.data[i]
}

// Samples returns a copy of the underlying sample data.
func (s *Signal) Samples() []complex128 {
	out := make([]complex128, len(s.data))
	copy(out, s.data)
	return out
}

// Shift returns y with y[n] = x[n-k]. Samples shifted in from outside the
// stored range are zero; the length is unchanged (clipping, not circular).
func (s *Signal) Shift(k int) *Signal {
	out := make([]complex128, len(s.data))
	for n := range out {
		out[n] = s.At(n - k)
	}
	return &Signal{data: out, sampleRate: s.sampleRate}
}

// Integrate returns the running sum y[n] = sum of x[k] for k <= n.
func (s *Signal) Integrate() *Signal {
	out := make([]complex128, len(s.data))
	var acc complex128
	for n, x := range s.data {
		acc += x
		out[n] = acc
	}
	return &Signal{data: out, sampleRate: s.sampleRate}
}

// Differentiate returns the first difference y[n] = x[n] - x[n-1], with
// x[-1] treated as zero.
func (s *Signal) Differentiate() *Signal {
	out := make([]complex128, len(s.data))
	var last complex128
	for n, x := range s.data {
		out[n] = x - last
		last = x
	}
	return &Signal{data: out, sampleRate: s.sampleRate}
}

// Energy returns the sum of squared sample magnitudes. It returns
// [ErrEmptySignal] for a zero-length signal; the result is otherwise
// non-negative by construction.
func (s *Signal) Energy() (float64, error) {
	if len(s.data) == 0 {
		return 0, fmt.Errorf("energy: %w", ErrEmptySignal)
	}
	sum := 0.0
	for _, x := range s.data {
		re := real(x)
		im := imag(x)
		sum += re*re + im*im
	}
	return sum, nil
}

// Power returns the mean of squared sample magnitudes, Energy / Len. It
// returns [ErrEmptySignal] for a zero-length signal.
func (s *Signal) Power() (float64, error) {
	e, err := s.Energy()
	if err != nil {
		return 0, fmt.Errorf("power: %w", err)
	}
	return e / float64(len(s.data)), nil
}

// AddNoise returns a new signal with an independent Gaussian perturbation of
// mean 0 and the given standard deviation added to each sample.
//
// Only the real component is perturbed; imaginary parts pass through
// unchanged. The sample rate is preserved.
func (s *Signal) AddNoise(src NoiseSource, stdDev float64) (*Signal, error) {
	if src == nil {
		return nil, fmt.Errorf("add noise: %w", ErrNilNoiseSource)
	}
	if stdDev < 0 {
		return nil, fmt.Errorf("add noise: standard deviation must be >= 0: %f", stdDev)
	}

	out := make([]complex128, len(s.data))
	for i, x := range s.data {
		out[i] = x + complex(src.SampleNormal(0, stdDev), 0)
	}
	return &Signal{data: out, sampleRate: s.sampleRate}, nil
}

// Equal reports whether two signals hold element-wise identical samples.
// Comparison is exact, with no tolerance. The sample rate is deliberately not
// part of equality: two signals with identical samples but different declared
// rates compare equal.
func (s *Signal) Equal(other *Signal) bool {
	if other == nil || len(s.data) != len(other.data) {
		return false
	}
	for i := range s.data {
		if s.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Spectrum is an immutable frequency-domain signal: one complex amplitude per
// frequency bin, plus the sample rate of the originating time-domain signal.
type Spectrum struct {
	bins       []complex128
	sampleRate int
}

// New creates a spectrum from complex bins and a sample rate. The input
// slice is copied.
func New(bins []complex128, sampleRate int) *Spectrum {
	b := make([]complex128, len(bins))
	copy(b, bins)
	return &Spectrum{bins: b, sampleRate: sampleRate}
}

// Len returns the number of frequency bins.
func (s *Spectrum) Len() int {
	return len(s.bins)
}

// SampleRate returns the sample rate tag in samples per second.
func (s *Spectrum) SampleRate() int {
	return s.sampleRate
}

// At returns the bin at index i, or zero when i is outside [0, Len).
func (s *Spectrum) At(i int) complex128 {
	if i < 0 || i >= len(s.bins) {
		return 0
	}
	return s.bins[i]
}

// Bins returns a copy of the underlying bin data.
func (s *Spectrum) Bins() []complex128 {
	out := make([]complex128, len(s.bins))
	copy(out, s.bins)
	return out
}

// Equal reports whether two spectra hold element-wise identical bins.
// Comparison is exact; the sample rate is not part of equality.
func (s *Spectrum) Equal(other *Spectrum) bool {
	if other == nil || len(s.bins) != len(other.bins) {
		return false
	}
	for i := range s.bins {
		if s.bins[i] != other.bins[i] {
			return false
		}
	}
	return true
}

// Magnitudes returns |X[k]| for each bin.
//
// This uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func (s *Spectrum) Magnitudes() []float64 {
	if len(s.bins) == 0 {
		return nil
	}

	out := make([]float64, len(s.bins))
	re, im, buf := getScratch(len(s.bins))

	for i, c := range s.bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Powers returns |X[k]|^2 for each bin.
//
// This uses SIMD-optimized implementations when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func (s *Spectrum) Powers() []float64 {
	if len(s.bins) == 0 {
		return nil
	}

	out := make([]float64, len(s.bins))
	re, im, buf := getScratch(len(s.bins))

	for i, c := range s.bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phases returns arg(X[k]) for each bin in radians.
func (s *Spectrum) Phases() []float64 {
	if len(s.bins) == 0 {
		return nil
	}
	out := make([]float64, len(s.bins))
	for i, c := range s.bins {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// Frequencies returns the center frequency of each bin in Hz,
// k * sampleRate / N. Bins above N/2 correspond to negative frequencies
// under the usual DFT aliasing but are reported unaliased here.
func (s *Spectrum) Frequencies() []float64 {
	n := len(s.bins)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	step := float64(s.sampleRate) / float64(n)
	for k := range out {
		out[k] = float64(k) * step
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

package fourier

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-signals/dsp/discrete"
	"github.com/cwbudde/algo-signals/dsp/spectrum"
)

// ForwardFFT computes the discrete Fourier transform of signals of one fixed
// length. The plan state is read-only after construction, so a ForwardFFT may
// be shared across goroutines.
type ForwardFFT struct {
	size int
	plan *algofft.Plan[complex128]
}

// InverseFFT computes the inverse discrete Fourier transform of spectra of
// one fixed length, including the 1/N normalization. The plan state is
// read-only after construction, so an InverseFFT may be shared across
// goroutines.
type InverseFFT struct {
	size int
	plan *algofft.Plan[complex128]
}

// NewForward creates a forward transform bound to the given size.
func NewForward(size int) (*ForwardFFT, error) {
	plan, err := newPlan(size)
	if err != nil {
		return nil, err
	}
	return &ForwardFFT{size: size, plan: plan}, nil
}

// NewInverse creates an inverse transform bound to the given size.
func NewInverse(size int) (*InverseFFT, error) {
	plan, err := newPlan(size)
	if err != nil {
		return nil, err
	}
	return &InverseFFT{size: size, plan: plan}, nil
}

func newPlan(size int) (*algofft.Plan[complex128], error) {
	if size <= 0 {
		return nil, fmt.Errorf("fourier: transform size must be > 0: %d", size)
	}
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}
	return plan, nil
}

// Size returns the transform size the instance was constructed with.
func (f *ForwardFFT) Size() int {
	return f.size
}

// Process transforms a time-domain signal into its spectrum. The signal
// length must equal the transform size; a mismatch is a caller error and is
// reported, never padded or truncated. The signal's sample rate is carried
// into the spectrum.
func (f *ForwardFFT) Process(sig *discrete.Signal) (*spectrum.Spectrum, error) {
	if sig == nil {
		return nil, fmt.Errorf("fourier: forward: %w", ErrNilInput)
	}
	if sig.Len() != f.size {
		return nil, fmt.Errorf("fourier: forward: %w: got %d, want %d", ErrSizeMismatch, sig.Len(), f.size)
	}

	in := sig.Samples()
	out := make([]complex128, f.size)
	if err := f.plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fourier: forward FFT failed: %w", err)
	}
	return spectrum.New(out, sig.SampleRate()), nil
}

// Size returns the transform size the instance was constructed with.
func (f *InverseFFT) Size() int {
	return f.size
}

// Process transforms a spectrum back into a time-domain signal, applying the
// 1/N normalization. The spectrum length must equal the transform size. The
// spectrum's sample rate is carried into the signal.
func (f *InverseFFT) Process(spec *spectrum.Spectrum) (*discrete.Signal, error) {
	if spec == nil {
		return nil, fmt.Errorf("fourier: inverse: %w", ErrNilInput)
	}
	if spec.Len() != f.size {
		return nil, fmt.Errorf("fourier: inverse: %w: got %d, want %d", ErrSizeMismatch, spec.Len(), f.size)
	}

	in := spec.Bins()
	out := make([]complex128, f.size)
	if err := f.plan.Inverse(out, in); err != nil {
		return nil, fmt.Errorf("fourier: inverse FFT failed: %w", err)
	}
	return discrete.NewWithRate(out, spec.SampleRate()), nil
}

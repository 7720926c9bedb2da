// Package fourier connects the time and frequency domains.
//
// ForwardFFT and InverseFFT bind a transform size at construction, which
// precomputes the underlying FFT plan, and are then reused across many
// Process calls of that exact size. The forward transform is unnormalized
// and the inverse applies the 1/N factor, so a forward/inverse round trip
// reproduces the input up to floating-point rounding.
//
// Power-of-two sizes hit the fast plan kernels; other sizes are supported by
// the backend at a performance cost.
package fourier

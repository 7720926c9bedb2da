// Package spectrum models frequency-domain signals.
//
// A Spectrum holds the complex bins produced by a forward Fourier transform
// together with the sample rate of the time-domain signal that produced them.
// The package intentionally does not implement the transform itself; it
// stores and analyzes bins produced by the fourier package or any external
// FFT backend.
package spectrum

// Package stats measures discrete-time signals.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-signals/dsp/core"
	"github.com/cwbudde/algo-signals/dsp/discrete"
)

// Stats holds magnitude-based measurements of a discrete signal.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            complex128 // complex mean
	Energy        float64    // sum of squared magnitudes
	Power         float64    // energy / length
	RMS           float64
	RMS_dB        float64
	PeakMagnitude float64
	Peak_dB       float64
	PeakPos       int
	CrestFactor   float64 // peak / RMS (linear)
}

// Calculate computes all measurements in a single pass over the samples.
// It returns an error for an empty signal, where the measurements are
// undefined.
func Calculate(sig *discrete.Signal) (Stats, error) {
	if sig == nil || sig.Len() == 0 {
		return Stats{}, fmt.Errorf("stats: %w", discrete.ErrEmptySignal)
	}

	n := sig.Len()
	samples := sig.Samples()

	var sum complex128
	mag2 := make([]float64, n)
	for i, x := range samples {
		re := real(x)
		im := imag(x)
		mag2[i] = re*re + im*im
		sum += x
	}

	energy := floats.Sum(mag2)
	peakPos := floats.MaxIdx(mag2)
	peak := math.Sqrt(mag2[peakPos])
	power := energy / float64(n)
	rms := math.Sqrt(power)

	crest := 0.0
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		DC:            sum / complex(float64(n), 0),
		Energy:        energy,
		Power:         power,
		RMS:           rms,
		RMS_dB:        core.LinearToDB(rms),
		PeakMagnitude: peak,
		Peak_dB:       core.LinearToDB(peak),
		PeakPos:       peakPos,
		CrestFactor:   crest,
	}, nil
}

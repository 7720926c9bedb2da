package spectrum

import (
	"math"
	"testing"
)

const tolerance = 1e-12

func TestNew_DefensiveCopy(t *testing.T) {
	in := []complex128{1, 2i, 3}
	s := New(in, 4)
	in[0] = 99
	if s.At(0) != 1 {
		t.Errorf("construction aliased input: got %v, want 1", s.At(0))
	}

	out := s.Bins()
	out[1] = 99
	if s.At(1) != 2i {
		t.Errorf("Bins aliased storage: got %v, want 2i", s.At(1))
	}
}

func TestAt_OutOfRangeIsZero(t *testing.T) {
	s := New([]complex128{1, 2}, 2)
	for _, i := range []int{-1, 2, 10} {
		if got := s.At(i); got != 0 {
			t.Errorf("At(%d): got %v, want 0", i, got)
		}
	}
}

func TestEqual_IgnoresSampleRate(t *testing.T) {
	a := New([]complex128{1, 2i}, 4)
	b := New([]complex128{1, 2i}, 48000)
	if !a.Equal(b) {
		t.Error("spectra with identical bins must compare equal regardless of rate")
	}
	if a.Equal(New([]complex128{1, 3i}, 4)) {
		t.Error("spectra with differing bins must not compare equal")
	}
	if a.Equal(nil) {
		t.Error("nil comparand must not compare equal")
	}
}

func TestMagnitudes(t *testing.T) {
	s := New([]complex128{3 + 4i, 0, -1, 2i}, 4)
	got := s.Magnitudes()
	want := []float64{5, 0, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tolerance {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPowers(t *testing.T) {
	s := New([]complex128{3 + 4i, 0, -1, 2i}, 4)
	got := s.Powers()
	want := []float64{25, 0, 1, 4}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tolerance {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPhases(t *testing.T) {
	s := New([]complex128{1, 1i, -1}, 3)
	got := s.Phases()
	want := []float64{0, math.Pi / 2, math.Pi}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tolerance {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFrequencies(t *testing.T) {
	s := New(make([]complex128, 8), 8000)
	got := s.Frequencies()
	for k, f := range got {
		want := float64(k) * 1000
		if math.Abs(f-want) > tolerance {
			t.Errorf("bin %d: got %v Hz, want %v Hz", k, f, want)
		}
	}
}

func TestEmptySpectrum(t *testing.T) {
	s := New(nil, 0)
	if s.Magnitudes() != nil || s.Powers() != nil || s.Phases() != nil || s.Frequencies() != nil {
		t.Error("analysis on an empty spectrum must return nil")
	}
}

func TestUnwrapPhase(t *testing.T) {
	wrapped := []float64{0, 2, -2.5, -0.5}
	got := UnwrapPhase(wrapped)
	// 2 -> -2.5 drops by 4.5 > pi, so unwrapping lifts the tail by 2*pi.
	want := []float64{0, 2, -2.5 + 2*math.Pi, -0.5 + 2*math.Pi}
	for i := range want {
		if math.Abs(got[i]-want[i]) > tolerance {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

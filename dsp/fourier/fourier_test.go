package fourier

import (
	"errors"
	"math"
	"testing"

	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-signals/dsp/discrete"
	"github.com/cwbudde/algo-signals/dsp/spectrum"
	"github.com/cwbudde/algo-signals/internal/testutil"
)

const tolerance = 1e-9

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range []int{-4, -1, 0} {
		if _, err := NewForward(size); err == nil {
			t.Errorf("NewForward(%d): expected error", size)
		}
		if _, err := NewInverse(size); err == nil {
			t.Errorf("NewInverse(%d): expected error", size)
		}
	}
}

func TestForward_ImpulseIsFlat(t *testing.T) {
	ft, err := NewForward(4)
	if err != nil {
		t.Fatalf("NewForward: %v", err)
	}

	s, err := ft.Process(discrete.FromReals([]float64{1, 0, 0, 0}))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	testutil.RequireComplexSliceNearlyEqual(t, s.Bins(), []complex128{1, 1, 1, 1}, tolerance)
	if s.SampleRate() != 4 {
		t.Errorf("SampleRate: got %d, want 4", s.SampleRate())
	}
}

func TestForward_SingleTone(t *testing.T) {
	const (
		n   = 64
		bin = 5
	)
	ft, err := NewForward(n)
	if err != nil {
		t.Fatalf("NewForward: %v", err)
	}

	sig := discrete.New(testutil.ComplexSine(bin, n, 1, n))
	s, err := ft.Process(sig)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	mags := s.Magnitudes()
	for k, m := range mags {
		want := 0.0
		if k == bin || k == n-bin {
			want = float64(n) / 2
		}
		if math.Abs(m-want) > 1e-6 {
			t.Errorf("bin %d: magnitude %v, want %v", k, m, want)
		}
	}
}

func TestForward_MatchesReferenceFFT(t *testing.T) {
	const n = 32
	data := testutil.RandomComplex(42, n)

	ft, err := NewForward(n)
	if err != nil {
		t.Fatalf("NewForward: %v", err)
	}
	got, err := ft.Process(discrete.New(data))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	want := fft.FFT(data)
	testutil.RequireComplexSliceNearlyEqual(t, got.Bins(), want, tolerance)
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []int{4, 16, 64, 256} {
		data := testutil.RandomComplex(int64(n), n)

		ft, err := NewForward(n)
		if err != nil {
			t.Fatalf("NewForward(%d): %v", n, err)
		}
		ift, err := NewInverse(n)
		if err != nil {
			t.Fatalf("NewInverse(%d): %v", n, err)
		}

		spec, err := ft.Process(discrete.New(data))
		if err != nil {
			t.Fatalf("forward(%d): %v", n, err)
		}
		back, err := ift.Process(spec)
		if err != nil {
			t.Fatalf("inverse(%d): %v", n, err)
		}

		testutil.RequireComplexSliceNearlyEqual(t, back.Samples(), data, tolerance)
	}
}

func TestProcess_SizeMismatch(t *testing.T) {
	ft, err := NewForward(8)
	if err != nil {
		t.Fatalf("NewForward: %v", err)
	}
	if _, err := ft.Process(discrete.FromReals([]float64{1, 2, 3})); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("forward mismatch: got %v, want ErrSizeMismatch", err)
	}

	ift, err := NewInverse(8)
	if err != nil {
		t.Fatalf("NewInverse: %v", err)
	}
	if _, err := ift.Process(spectrum.New(make([]complex128, 9), 9)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("inverse mismatch: got %v, want ErrSizeMismatch", err)
	}
}

func TestProcess_NilInput(t *testing.T) {
	ft, err := NewForward(4)
	if err != nil {
		t.Fatalf("NewForward: %v", err)
	}
	if _, err := ft.Process(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("forward nil: got %v, want ErrNilInput", err)
	}

	ift, err := NewInverse(4)
	if err != nil {
		t.Fatalf("NewInverse: %v", err)
	}
	if _, err := ift.Process(nil); !errors.Is(err, ErrNilInput) {
		t.Errorf("inverse nil: got %v, want ErrNilInput", err)
	}
}

func TestProcess_ReusableAcrossCalls(t *testing.T) {
	const n = 16
	ft, err := NewForward(n)
	if err != nil {
		t.Fatalf("NewForward: %v", err)
	}

	sig := discrete.New(testutil.RandomComplex(3, n))
	first, err := ft.Process(sig)
	if err != nil {
		t.Fatalf("first Process: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := ft.Process(sig)
		if err != nil {
			t.Fatalf("repeat Process: %v", err)
		}
		if !again.Equal(first) {
			t.Fatalf("call %d: plan reuse produced different output", i)
		}
	}
}

func TestSampleRate_CarriedThrough(t *testing.T) {
	const n = 8
	ft, err := NewForward(n)
	if err != nil {
		t.Fatalf("NewForward: %v", err)
	}
	ift, err := NewInverse(n)
	if err != nil {
		t.Fatalf("NewInverse: %v", err)
	}

	sig := discrete.NewWithRate(testutil.RandomComplex(11, n), 48000)
	spec, err := ft.Process(sig)
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	if spec.SampleRate() != 48000 {
		t.Errorf("spectrum SampleRate: got %d, want 48000", spec.SampleRate())
	}

	back, err := ift.Process(spec)
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}
	if back.SampleRate() != 48000 {
		t.Errorf("signal SampleRate: got %d, want 48000", back.SampleRate())
	}
}

package continuous_test

import (
	"fmt"

	"github.com/cwbudde/algo-signals/dsp/continuous"
)

func ExampleSample() {
	xs, err := continuous.Sample(continuous.Impulse(), -1, 2, 1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f %.0f %.0f\n", real(xs[0]), real(xs[1]), real(xs[2]))

	// Output:
	// 0 1 0
}

func ExampleAdd() {
	s := continuous.Add(continuous.Impulse(), continuous.Step())
	fmt.Printf("%.0f %.0f %.0f\n", real(s.At(-4)), real(s.At(0)), real(s.At(42)))

	// Output:
	// 0 2 1
}

func ExampleModulate() {
	// Amplitude modulation: baseband sine on a faster cosine carrier.
	am := continuous.Modulate(continuous.Sine(2, 0), continuous.Cosine(8, 0))
	fmt.Printf("%.3f\n", real(am.At(0.125)))

	// Output:
	// 1.000
}

// Package noise provides a Gaussian sample source for additive noise.
//
// Generator satisfies the discrete package's NoiseSource interface. It is not
// safe for unsynchronized concurrent use; give each goroutine its own
// Generator or serialize access.
package noise

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

const defaultSeed = 1

// Generator draws independent normally distributed real samples.
type Generator struct {
	src rand.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets a deterministic random seed for reproducible noise.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = rand.NewPCG(seed, seed)
	}
}

// NewGenerator creates a Gaussian noise generator. Without options the
// generator is seeded deterministically.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		src: rand.NewPCG(defaultSeed, defaultSeed),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleNormal returns one sample drawn from N(mean, stdDev^2). Successive
// calls are independent. A stdDev of zero returns mean exactly.
func (g *Generator) SampleNormal(mean, stdDev float64) float64 {
	if stdDev == 0 {
		return mean
	}
	n := distuv.Normal{Mu: mean, Sigma: stdDev, Src: g.src}
	return n.Rand()
}

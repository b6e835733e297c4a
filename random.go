package fred

import (
	"math/rand"
	"time"
)

// UniformRandomGenerator draws uniformly distributed float64 values,
// grounded in original_source/include/random.hpp's Uniform_Random_Generator
// (an mt19937_64 seeded from a non-deterministic source).
type UniformRandomGenerator struct {
	rng  *rand.Rand
	low  float64
	high float64
}

// NewUniformRandomGenerator returns a generator drawing from [low, high),
// seeded from a non-deterministic source.
func NewUniformRandomGenerator(low, high float64) *UniformRandomGenerator {
	return &UniformRandomGenerator{
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		low:  low,
		high: high,
	}
}

// Get draws a single value.
func (g *UniformRandomGenerator) Get() float64 {
	return g.low + g.rng.Float64()*(g.high-g.low)
}

// GetN draws n values.
func (g *UniformRandomGenerator) GetN(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Get()
	}
	return out
}

// GetInt draws a single value in [0, n), used for farthest-first seeding's
// random initial center.
func (g *UniformRandomGenerator) GetInt(n int) int {
	return g.rng.Intn(n)
}

// GaussRandomGenerator draws normally distributed float64 values, grounded
// in original_source/include/random.hpp's Gauss_Random_Generator.
type GaussRandomGenerator struct {
	rng    *rand.Rand
	mean   float64
	stddev float64
}

// NewGaussRandomGenerator returns a generator with the given mean and
// standard deviation, seeded from a non-deterministic source.
func NewGaussRandomGenerator(mean, stddev float64) *GaussRandomGenerator {
	return &GaussRandomGenerator{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		mean:   mean,
		stddev: stddev,
	}
}

// Get draws a single value.
func (g *GaussRandomGenerator) Get() float64 {
	return g.mean + g.rng.NormFloat64()*g.stddev
}

// GetN draws n values.
func (g *GaussRandomGenerator) GetN(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Get()
	}
	return out
}

// DiscreteProbabilityGenerator draws indices according to a discrete
// probability distribution over weights.
type DiscreteProbabilityGenerator struct {
	rng       *rand.Rand
	cumulative []float64
}

// NewDiscreteProbabilityGenerator builds a generator over weights, which
// need not be normalized.
func NewDiscreteProbabilityGenerator(weights []float64) *DiscreteProbabilityGenerator {
	cumulative := make([]float64, len(weights))
	var sum float64
	for i, w := range weights {
		sum += w
		cumulative[i] = sum
	}
	if sum > 0 {
		for i := range cumulative {
			cumulative[i] /= sum
		}
	}
	return &DiscreteProbabilityGenerator{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		cumulative: cumulative,
	}
}

// Get draws a single index according to the configured weights.
func (g *DiscreteProbabilityGenerator) Get() int {
	if len(g.cumulative) == 0 {
		return -1
	}
	r := g.rng.Float64()
	for i, c := range g.cumulative {
		if r <= c {
			return i
		}
	}
	return len(g.cumulative) - 1
}

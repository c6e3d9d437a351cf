// Package rnd provides the pseudorandom source used by the samplers. The
// source is explicit rather than process-global so that chains are
// reproducible from a seed and tests can substitute a scripted source.
package rnd

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source supplies uniform variates to a sampler.
type Source interface {
	// Uniform returns a value drawn uniformly from [low, high).
	Uniform(low, high float64) float64
}

// Rand is a Source backed by a seeded pseudorandom generator.
type Rand struct {
	src rand.Source
}

// New creates a Rand from a seed.
func New(seed uint64) *Rand {
	return &Rand{src: rand.NewSource(seed)}
}

// Uniform returns a value drawn uniformly from [low, high).
func (r *Rand) Uniform(low, high float64) float64 {
	return distuv.Uniform{Min: low, Max: high, Src: r.src}.Rand()
}

// Src exposes the underlying generator for distributions that consume a
// rand.Source directly.
func (r *Rand) Src() rand.Source {
	return r.src
}

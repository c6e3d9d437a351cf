// Package dist generates the synthetic observations used to populate the
// likelihood.
package dist

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Normal draws independent samples from a standard normal distribution
// (mean 0, standard deviation 1).
type Normal struct {
	dist distuv.Normal
}

// NewNormal creates a standard normal data source drawing from src.
func NewNormal(src rand.Source) *Normal {
	return &Normal{dist: distuv.Normal{Mu: 0, Sigma: 1, Src: src}}
}

// Generate returns n independent draws.
func (d *Normal) Generate(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = d.dist.Rand()
	}
	return xs
}

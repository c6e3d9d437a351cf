package sample

import (
	"gonum.org/v1/gonum/floats"
)

// Target is a scalar density explored by the samplers.
type Target interface {
	Posterior(a float64) (float64, error)
}

// Grid evaluates target over a uniform partition of [aMin, aMax] with
// points candidates, inclusive of both endpoints. Candidates are
// evaluated in increasing order; both returned slices are fresh and of
// equal length.
func Grid(target Target, aMin, aMax float64, points int) (candidates, posteriors []float64, err error) {
	if err := CheckRange(aMin, aMax); err != nil {
		return nil, nil, err
	}
	if err := CheckTrials(points); err != nil {
		return nil, nil, err
	}
	if points == 1 {
		candidates = []float64{aMin}
	} else {
		candidates = floats.Span(make([]float64, points), aMin, aMax)
	}
	posteriors = make([]float64, points)
	for i, a := range candidates {
		p, err := target.Posterior(a)
		if err != nil {
			return nil, nil, err
		}
		posteriors[i] = p
	}
	return candidates, posteriors, nil
}

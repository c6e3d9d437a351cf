// Package posterior implements the unnormalized posterior density of the
// parameter a given observations drawn from a standard normal. The true
// value of a is e, the base of natural logarithms.
package posterior

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrParameter is returned for a candidate value outside the model
// domain. The normalization constant sqrt(ln(a)/2pi) requires a > 1.
var ErrParameter = errors.New("candidate parameter outside model domain")

// Model is the unnormalized posterior P(a|x) for a fixed observation set.
type Model struct {
	data []float64
}

// New creates a Model from a non-empty observation set. The observations
// are copied and never mutated afterwards.
func New(observations []float64) (*Model, error) {
	if len(observations) == 0 {
		return nil, errors.New("observation set must not be empty")
	}
	data := make([]float64, len(observations))
	copy(data, observations)
	return &Model{data: data}, nil
}

// NObs returns the number of observations.
func (m *Model) NObs() int {
	return len(m.data)
}

// Posterior computes the unnormalized posterior at a as the product over
// all observations x of sqrt(ln(a)/2pi) * a^(-x^2/2). The value is not a
// probability; only ratios between values for the same observation set
// are meaningful. For large observation sets the product can underflow to
// exactly zero.
func (m *Model) Posterior(a float64) (float64, error) {
	if a <= 1 {
		return 0, errors.Wrapf(ErrParameter, "a must be > 1, got %v", a)
	}
	na := math.Sqrt(math.Log(a) / (2 * math.Pi))
	p := 1.0
	for _, x := range m.data {
		p *= na * math.Pow(a, -x*x/2)
	}
	return p, nil
}

package posterior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var observations = []float64{0.2, -0.5, 1.1, -1.3, 0.4, -0.7, 0.95, 0.3, -0.25, 0.6}

func TestPosteriorValue(t *testing.T) {
	m, err := New(observations)
	require.NoError(t, err)

	p, err := m.Posterior(2)
	require.NoError(t, err)
	assert.InEpsilon(t, 2.6440620926856037e-06, p, 1e-12)

	p, err = m.Posterior(9.5)
	require.NoError(t, err)
	assert.InEpsilon(t, 1.5932753293212404e-05, p, 1e-12)
}

func TestPosteriorNonNegative(t *testing.T) {
	m, err := New(observations)
	require.NoError(t, err)
	for a := 1.0001; a < 10; a += 0.037 {
		p, err := m.Posterior(a)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.0, "a=%v", a)
	}
}

func TestPosteriorDomain(t *testing.T) {
	m, err := New(observations)
	require.NoError(t, err)
	for _, a := range []float64{1, 0.5, 0, -3} {
		_, err := m.Posterior(a)
		assert.ErrorIs(t, err, ErrParameter, "a=%v", a)
	}
}

func TestEmptyObservations(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
	_, err = New([]float64{})
	assert.Error(t, err)
}

func TestUnderflowToZero(t *testing.T) {
	// A single extreme observation drives a^(-x^2/2) below the smallest
	// subnormal, so the product underflows to exactly zero.
	m, err := New([]float64{1000})
	require.NoError(t, err)
	p, err := m.Posterior(2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)
}

func TestObservationsCopied(t *testing.T) {
	xs := []float64{0.1, -0.2, 0.3}
	m, err := New(xs)
	require.NoError(t, err)
	before, err := m.Posterior(2.5)
	require.NoError(t, err)

	xs[0] = 100
	after, err := m.Posterior(2.5)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

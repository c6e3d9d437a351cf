package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statlab/ecalc/posterior"
)

var observations = []float64{0.2, -0.5, 1.1, -1.3, 0.4, -0.7, 0.95, 0.3, -0.25, 0.6}

func newModel(t *testing.T) *posterior.Model {
	m, err := posterior.New(observations)
	require.NoError(t, err)
	return m
}

func TestGridSpan(t *testing.T) {
	m := newModel(t)
	candidates, posteriors, err := Grid(m, 1.01, 7, 100)
	require.NoError(t, err)
	require.Len(t, candidates, 100)
	require.Len(t, posteriors, 100)

	assert.Equal(t, 1.01, candidates[0])
	assert.InDelta(t, 7.0, candidates[99], 1e-9)
	for i := 1; i < len(candidates); i++ {
		assert.Greater(t, candidates[i], candidates[i-1])
	}
}

func TestGridMatchesPosterior(t *testing.T) {
	m := newModel(t)
	candidates, posteriors, err := Grid(m, 1.5, 5, 20)
	require.NoError(t, err)
	for i, a := range candidates {
		p, err := m.Posterior(a)
		require.NoError(t, err)
		assert.Equal(t, p, posteriors[i])
	}
}

func TestGridSinglePoint(t *testing.T) {
	m := newModel(t)
	candidates, posteriors, err := Grid(m, 2, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, candidates)
	require.Len(t, posteriors, 1)
}

func TestGridValidation(t *testing.T) {
	m := newModel(t)

	_, _, err := Grid(m, 0.5, 5, 10)
	assert.ErrorIs(t, err, ErrParameterRange)
	assert.Contains(t, err.Error(), "0.5")

	_, _, err = Grid(m, 2, 1.5, 10)
	assert.ErrorIs(t, err, ErrParameterRange)

	_, _, err = Grid(m, 1.01, 7, 0)
	assert.ErrorIs(t, err, ErrTrialCount)

	_, _, err = Grid(m, 1.01, 7, -3)
	assert.ErrorIs(t, err, ErrTrialCount)
}

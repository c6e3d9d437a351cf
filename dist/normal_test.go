package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat"
)

func TestGenerateLength(t *testing.T) {
	d := NewNormal(rand.NewSource(1))
	xs := d.Generate(50)
	assert.Len(t, xs, 50)
}

func TestReproducible(t *testing.T) {
	a := NewNormal(rand.NewSource(7)).Generate(100)
	b := NewNormal(rand.NewSource(7)).Generate(100)
	assert.Equal(t, a, b)
}

func TestMoments(t *testing.T) {
	xs := NewNormal(rand.NewSource(3)).Generate(10000)
	require.Len(t, xs, 10000)
	mean, sd := stat.MeanStdDev(xs, nil)
	assert.InDelta(t, 0, mean, 0.1)
	assert.InDelta(t, 1, sd, 0.1)
}

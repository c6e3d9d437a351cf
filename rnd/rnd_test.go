package rnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformRange(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		v := r.Uniform(2, 5)
		assert.GreaterOrEqual(t, v, 2.0)
		assert.Less(t, v, 5.0)
	}
}

func TestReproducible(t *testing.T) {
	a := New(99)
	b := New(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Uniform(0, 1), b.Uniform(0, 1))
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.Uniform(0, 1) != b.Uniform(0, 1) {
			same = false
		}
	}
	assert.False(t, same)
}

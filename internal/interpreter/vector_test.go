package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	north = NewVector(0, 1)
	east  = NewVector(1, 0)
	south = NewVector(0, -1)
	west  = NewVector(-1, 0)
)

func TestRotateLeft(t *testing.T) {
	assert.Equal(t, west, north.RotateLeft())
	assert.Equal(t, south, west.RotateLeft())
	assert.Equal(t, east, south.RotateLeft())
	assert.Equal(t, north, east.RotateLeft())
}

func TestRotateRight(t *testing.T) {
	assert.Equal(t, east, north.RotateRight())
	assert.Equal(t, south, east.RotateRight())
	assert.Equal(t, west, south.RotateRight())
	assert.Equal(t, north, west.RotateRight())
}

func TestRotationClosure(t *testing.T) {
	for _, v := range []Vector{north, east, south, west} {
		assert.True(t, v.RotateLeft().IsUnit(), "left of %s", v)
		assert.True(t, v.RotateRight().IsUnit(), "right of %s", v)
		assert.Equal(t, v, v.RotateRight().RotateLeft())
		assert.Equal(t, v, v.RotateLeft().RotateRight())
		assert.Equal(t, v, v.RotateLeft().RotateLeft().RotateLeft().RotateLeft())
	}
}

func TestAdd(t *testing.T) {
	assert.Equal(t, NewVector(3, 3), NewVector(2, 3).Add(east))
	assert.Equal(t, NewVector(-1, 7), NewVector(-1, 8).Add(south))
}

func TestIsUnit(t *testing.T) {
	assert.False(t, NewVector(0, 0).IsUnit())
	assert.False(t, NewVector(1, 1).IsUnit())
	assert.False(t, NewVector(0, 2).IsUnit())
	assert.True(t, west.IsUnit())
}

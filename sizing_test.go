package remesh3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A constant sizing field ignores its argument.
func TestConstantSizingField(t *testing.T) {
	field := ConstantSizingField(0.25)

	assert.Equal(t, 0.25, field(NewVector(0, 0, 0)))
	assert.Equal(t, 0.25, field(NewVector(100, -4, 9)))
}

// An interpolated sizing field picks the nearest anchor's length.
func TestInterpolatedSizingField(t *testing.T) {
	anchors := []Vector{NewVector(0, 0, 0), NewVector(10, 0, 0)}
	lengths := []float64{0.1, 1.0}
	field := InterpolatedSizingField(anchors, lengths)

	assert.Equal(t, 0.1, field(NewVector(1, 0, 0)))
	assert.Equal(t, 1.0, field(NewVector(9, 0, 0)))
}

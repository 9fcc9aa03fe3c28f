package remesh3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A triangle that is counter-clockwise viewed from +z, with the origin on
// its negative side (below it), yields a positive orientation.
func TestOrient3DPositive(t *testing.T) {
	a := NewVector(1, 0, 1)
	b := NewVector(0, 1, 1)
	c := NewVector(-1, -1, 1)
	d := NewVector(0, 0, 0)

	assert.Equal(t, 1, Orient3D(a, b, c, d))
}

// Reversing the winding flips the sign.
func TestOrient3DNegative(t *testing.T) {
	a := NewVector(1, 0, 1)
	b := NewVector(0, 1, 1)
	c := NewVector(-1, -1, 1)
	d := NewVector(0, 0, 0)

	assert.Equal(t, -1, Orient3D(b, a, c, d))
}

// Four coplanar points have zero signed volume.
func TestOrient3DCoplanar(t *testing.T) {
	a := NewVector(0, 0, 0)
	b := NewVector(1, 0, 0)
	c := NewVector(0, 1, 0)
	d := NewVector(1, 1, 0)

	assert.Equal(t, 0, Orient3D(a, b, c, d))
}

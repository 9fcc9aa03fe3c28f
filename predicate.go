package remesh3d

// Orient3D returns the sign of the signed volume of the tetrahedron
// (a, b, c, d): positive if d lies below the plane through a, b, c, where
// "above" is the side from which a, b, c appear counter-clockwise (the side
// the normal (b-a)x(c-a) points to); negative if d lies above; zero if
// coplanar. Used by the collapse safety check to detect triangle inversion.
//
// The determinant is evaluated in plain float64 arithmetic, with no error
// bound and no exact fallback (not Shewchuk's adaptive-precision
// expansion), so the sign can be wrong for nearly coplanar points.
func Orient3D(a, b, c, d Vector) int {
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)

	det := ad[0]*(bd[1]*cd[2]-bd[2]*cd[1]) -
		ad[1]*(bd[0]*cd[2]-bd[2]*cd[0]) +
		ad[2]*(bd[0]*cd[1]-bd[1]*cd[0])

	switch {
	case det > 0:
		return 1
	case det < 0:
		return -1
	default:
		return 0
	}
}

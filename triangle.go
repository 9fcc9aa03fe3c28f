package remesh3d

import "math"

// Triangle in three-dimension Cartesian space.
type Triangle struct {
	P Vector
	Q Vector
	R Vector
}

// Compute the area.
func (t Triangle) Area() float64 {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v).Mag() * 0.5
}

// Compute the normal.
func (t Triangle) Normal() Vector {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v)
}

// Compute the unit normal.
func (t Triangle) UnitNormal() Vector {
	return t.Normal().Unit()
}

// Compute the centroid.
func (t Triangle) Centroid() Vector {
	return t.P.Add(t.Q).Add(t.R).DivScalar(3)
}

// Compute the closest point on the (filled) triangle to an arbitrary
// point, via the region-classification algorithm of Ericson, Real-Time
// Collision Detection §5.1.5.
func (t Triangle) ClosestPoint(p Vector) Vector {
	ab := t.Q.Sub(t.P)
	ac := t.R.Sub(t.P)
	ap := p.Sub(t.P)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.P
	}

	bp := p.Sub(t.Q)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.Q
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return t.P.Add(ab.MulScalar(v))
	}

	cp := p.Sub(t.R)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.R
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return t.P.Add(ac.MulScalar(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.Q.Add(t.R.Sub(t.Q).MulScalar(w))
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return t.P.Add(ab.MulScalar(v)).Add(ac.MulScalar(w))
}

// Implement the IntersectsAABB interface using the separating axis theorem
// (Akenine-Moller triangle/box overlap test): the box's three face normals,
// the triangle's own normal, and the nine cross products of box edges with
// triangle edges.
func (t Triangle) IntersectsAABB(query AABB) bool {
	halfSize := query.HalfSize
	v0 := t.P.Sub(query.Center)
	v1 := t.Q.Sub(query.Center)
	v2 := t.R.Sub(query.Center)

	for i := 0; i < 3; i++ {
		minP := math.Min(v0[i], math.Min(v1[i], v2[i]))
		maxP := math.Max(v0[i], math.Max(v1[i], v2[i]))

		if minP > halfSize[i] || maxP < -halfSize[i] {
			return false
		}
	}

	edges := [3]Vector{v1.Sub(v0), v2.Sub(v1), v0.Sub(v2)}
	boxAxes := [3]Vector{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	for _, edge := range edges {
		for _, axis := range boxAxes {
			a := axis.Cross(edge)

			if a.Mag() < 1e-12 {
				continue
			}

			p0 := v0.Dot(a)
			p1 := v1.Dot(a)
			p2 := v2.Dot(a)

			minP := math.Min(p0, math.Min(p1, p2))
			maxP := math.Max(p0, math.Max(p1, p2))
			radius := halfSize.X()*math.Abs(a[0]) + halfSize.Y()*math.Abs(a[1]) + halfSize.Z()*math.Abs(a[2])

			if minP > radius || maxP < -radius {
				return false
			}
		}
	}

	normal := edges[0].Cross(edges[1])
	d := normal.Dot(v0)
	radius := halfSize.X()*math.Abs(normal[0]) + halfSize.Y()*math.Abs(normal[1]) + halfSize.Z()*math.Abs(normal[2])

	return d <= radius && d >= -radius
}

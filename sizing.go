package remesh3d

// SurfaceFunc maps a point to its corrected position on some reference
// surface. remesh.Options accepts one to re-snap vertices after tangential
// relaxation; satisfied either by a caller-supplied analytic function or
// by spatial.SurfaceProjector.Project.
type SurfaceFunc func(p Vector) Vector

// SizingField assigns a desired local edge length to a point in space. It
// must be total and finite over the mesh domain. Split and collapse
// decisions (halfedge.CheckSplit/CheckCollapse) sample it at an edge's
// midpoint.
type SizingField func(p Vector) float64

// ConstantSizingField returns a SizingField with a single target edge
// length everywhere.
func ConstantSizingField(length float64) SizingField {
	return func(Vector) float64 {
		return length
	}
}

// InterpolatedSizingField returns a SizingField that looks up the target
// length of the nearest of a set of anchor points, each carrying its own
// desired edge length. Anchors let a caller express a spatially varying
// field (coarse away from a feature, fine near it) without needing a full
// analytic function.
func InterpolatedSizingField(anchors []Vector, lengths []float64) SizingField {
	if len(anchors) != len(lengths) {
		panic("remesh3d: mismatched anchors and lengths")
	}

	return func(p Vector) float64 {
		best := 0
		bestDist := p.Sub(anchors[0]).Mag()

		for i := 1; i < len(anchors); i++ {
			d := p.Sub(anchors[i]).Mag()

			if d < bestDist {
				bestDist = d
				best = i
			}
		}

		return lengths[best]
	}
}

package spatial

import "github.com/archmesh/remesh3d"

// SurfaceProjector snaps points back onto a fixed reference surface
// (typically the original, unrelaxed mesh) after tangential relaxation has
// moved them along an approximated tangent plane. It snaps the relaxed
// point to the nearest point on a reference geometry built from an octree
// of triangles, via a nearest-triangle search rather than a closed-form
// evaluation against an analytic surface.
type SurfaceProjector struct {
	octree    *Octree
	triangles []remesh3d.Triangle
}

// Construct a SurfaceProjector over a fixed set of reference triangles.
func NewSurfaceProjector(triangles []remesh3d.Triangle) *SurfaceProjector {
	if len(triangles) == 0 {
		return &SurfaceProjector{}
	}

	vertices := make([]remesh3d.Vector, 0, 3*len(triangles))
	for _, tri := range triangles {
		vertices = append(vertices, tri.P, tri.Q, tri.R)
	}

	bounds := remesh3d.NewAABBFromVectors(vertices).Buffer(0.05)
	octree := NewOctree(bounds)

	for _, tri := range triangles {
		// A reference surface built from a real mesh is, by construction,
		// bounded by its own AABB; Insert cannot fail here.
		_ = octree.Insert(tri)
	}

	return &SurfaceProjector{octree: octree, triangles: triangles}
}

// Project returns the closest point to p among the candidate reference
// triangles. The query box starts at half-size 0.125 and doubles, up to 16
// queries, until it overlaps at least one triangle; those triangles are the
// candidates, or every triangle if no query found one. A triangle outside
// the first non-empty box is not considered, even if it is nearer than a
// candidate that only touches the box's corner.
func (s *SurfaceProjector) Project(p remesh3d.Vector) remesh3d.Vector {
	if len(s.triangles) == 0 {
		return p
	}

	radius := 0.0625
	var hits []int

	for tries := 0; tries < 16 && len(hits) == 0; tries++ {
		radius *= 2
		box := remesh3d.NewAABB(p, remesh3d.NewVector(radius, radius, radius))
		hits = s.octree.Query(box)
	}

	if len(hits) == 0 {
		hits = make([]int, len(s.triangles))
		for i := range hits {
			hits[i] = i
		}
	}

	best := s.triangles[hits[0]].ClosestPoint(p)
	bestDist := best.Sub(p).Mag()

	for _, idx := range hits[1:] {
		candidate := s.triangles[idx].ClosestPoint(p)
		if d := candidate.Sub(p).Mag(); d < bestDist {
			best, bestDist = candidate, d
		}
	}

	return best
}

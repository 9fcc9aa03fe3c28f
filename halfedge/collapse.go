package halfedge

import (
	"math"

	"github.com/archmesh/remesh3d"
)

const collapseRatio = math.Sqrt2 / 2

// CheckCollapse decides whether a half-edge is short enough, relative to
// the sizing field at its midpoint, to be a collapse candidate. It does
// not perform the inversion safety check; call CanCollapse for that.
func (s *Store) CheckCollapse(h HalfEdgeHandle, sizing remesh3d.SizingField) bool {
	mid := s.Midpoint(h)
	return s.Length(h)/sizing(mid) < collapseRatio
}

// CanCollapse reports whether collapsing h (merging its origin into its
// destination, moving the destination to the origin's position) leaves
// every surviving incident face correctly oriented. For every face in the
// one-ring of the destination other than the two faces incident to h, it
// checks that tentatively moving the destination vertex to the origin's
// point keeps the face on the same side of its original plane, using
// Orient3D against a point offset along the face's pre-collapse normal.
func (s *Store) CanCollapse(h HalfEdgeHandle) bool {
	twin := s.halfEdges[h].Twin
	origin := s.Origin(h)
	dest := s.halfEdges[h].Vertex
	f1 := s.halfEdges[h].Face
	f4 := s.halfEdges[twin].Face

	target := s.vertices[origin].Point

	for _, f := range s.OneRingFaces(dest) {
		if f == f1 || f == f4 {
			continue
		}

		edges := s.FaceHalfEdges(f)
		before := s.FaceNormal(f)
		anchor := s.vertices[s.halfEdges[edges[0]].Vertex].Point

		var pts [3]remesh3d.Vector
		for i, e := range edges {
			vh := s.halfEdges[e].Vertex
			if vh == dest {
				pts[i] = target
			} else {
				pts[i] = s.vertices[vh].Point
			}
		}

		above := anchor.Add(before)
		if remesh3d.Orient3D(pts[0], pts[1], pts[2], above) >= 0 {
			return false
		}
	}

	return true
}

// SatisfiesLinkCondition reports whether collapsing h would keep the mesh
// manifold: the only vertices adjacent to both endpoints of h must be the
// two apex vertices of its incident faces. If some other vertex is
// adjacent to both endpoints, collapsing would fold two unrelated regions
// of the mesh onto the same edge. This is the standard link condition for
// edge collapse, needed since this store must support arbitrary input
// meshes rather than only well-behaved regular geometry.
func (s *Store) SatisfiesLinkCondition(h HalfEdgeHandle) bool {
	twin := s.halfEdges[h].Twin
	tr := s.halfEdges[h].Next
	bl := s.halfEdges[twin].Next

	rApex := s.halfEdges[tr].Vertex
	sApex := s.halfEdges[bl].Vertex

	origin := s.Origin(h)
	dest := s.halfEdges[h].Vertex

	shared := make(map[VertexHandle]bool)
	for _, v := range s.OneRingVertices(origin) {
		shared[v] = true
	}

	count := 0
	for _, v := range s.OneRingVertices(dest) {
		if shared[v] {
			count++
		}
	}

	return count == 2 && shared[rApex] && shared[sApex]
}

// Collapse merges the origin of h into its destination, moving the
// surviving vertex to the origin's former position, and removing the two
// faces and six half-edges incident to h and its twin, and the origin
// vertex. The two remaining edge-pairs bridging the removed faces are
// re-twinned to each other, and every half-edge that pointed at the
// removed vertex is repointed at the surviving one. Returns the
// surviving vertex.
func (s *Store) Collapse(h HalfEdgeHandle) VertexHandle {
	twin := s.halfEdges[h].Twin
	tr := s.halfEdges[h].Next
	tl := s.halfEdges[tr].Next
	bl := s.halfEdges[twin].Next
	br := s.halfEdges[bl].Next

	p := s.Origin(h)
	q := s.halfEdges[h].Vertex
	s.vertices[q].Point = s.vertices[p].Point

	f1 := s.halfEdges[h].Face
	f4 := s.halfEdges[twin].Face

	rApex := s.halfEdges[tr].Vertex
	sApex := s.halfEdges[bl].Vertex

	x := s.halfEdges[tr].Twin
	y := s.halfEdges[tl].Twin
	w := s.halfEdges[br].Twin
	z := s.halfEdges[bl].Twin

	cur := h
	for {
		s.halfEdges[s.halfEdges[cur].Twin].Vertex = q
		cur = s.halfEdges[s.halfEdges[cur].Twin].Next
		if cur == h {
			break
		}
	}

	s.halfEdges[x].Twin = y
	s.halfEdges[y].Twin = x
	s.halfEdges[w].Twin = z
	s.halfEdges[z].Twin = w

	s.vertices[rApex].HalfEdge = x
	s.vertices[sApex].HalfEdge = z
	s.vertices[q].HalfEdge = w

	s.RemoveFace(f1)
	s.RemoveFace(f4)
	s.RemoveHalfEdge(h)
	s.RemoveHalfEdge(twin)
	s.RemoveHalfEdge(tr)
	s.RemoveHalfEdge(tl)
	s.RemoveHalfEdge(bl)
	s.RemoveHalfEdge(br)
	s.RemoveVertex(p)

	return q
}

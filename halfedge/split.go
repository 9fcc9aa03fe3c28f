package halfedge

import (
	"math"

	"github.com/archmesh/remesh3d"
)

// SplitDecision is the result of CheckSplit.
type SplitDecision int

const (
	NoSplit SplitDecision = iota
	InteriorSplit
	BoundarySplit
)

const splitHighRatio = math.Sqrt2
const splitLowRatio = 0.6

// setNext assigns a.Next = b and keeps the explicit Prev pointer in sync
// (b.Prev = a), so every pointer-rewiring operation only has to reason
// about Next.
func (s *Store) setNext(a, b HalfEdgeHandle) {
	s.halfEdges[a].Next = b
	s.halfEdges[b].Prev = a
}

// CheckSplit decides whether a half-edge should be split, and if so,
// whether as an interior (2-face) or boundary (1-face) split.
func (s *Store) CheckSplit(h HalfEdgeHandle, sizing remesh3d.SizingField) SplitDecision {
	length := s.Length(h)
	mid := s.Midpoint(h)
	target := sizing(mid)

	if length/target < splitHighRatio {
		return NoSplit
	}

	tr := s.halfEdges[h].Next
	bl := s.halfEdges[s.halfEdges[h].Twin].Next

	rApex := s.vertices[s.halfEdges[tr].Vertex].Point
	sApex := s.vertices[s.halfEdges[bl].Vertex].Point

	newEdgeR := rApex.Sub(mid).Mag()
	newEdgeS := mid.Sub(sApex).Mag()

	if newEdgeR/target < splitLowRatio || newEdgeS/target < splitLowRatio {
		return NoSplit
	}

	if s.IsBoundaryEdge(h) {
		return BoundarySplit
	}

	return InteriorSplit
}

// Split performs the interior (2-face) split: the edge h (p -> q) and its
// two incident triangles (p, q, r) and (q, p, s) are replaced by a
// midpoint vertex m and four triangles (p, m, r), (m, q, r), (q, m, s),
// (m, p, s). h itself becomes the edge (p -> m); the opposite half-edge
// (h.Twin) needs no change at all, since its origin tracks h.Vertex
// through the twin relationship.
func (s *Store) Split(h HalfEdgeHandle) VertexHandle {
	twin := s.halfEdges[h].Twin
	tr := s.halfEdges[h].Next
	tl := s.halfEdges[tr].Next
	bl := s.halfEdges[twin].Next
	br := s.halfEdges[bl].Next

	q := s.halfEdges[h].Vertex
	rApex := s.halfEdges[tr].Vertex
	sApex := s.halfEdges[bl].Vertex

	f1 := s.halfEdges[h].Face
	f4 := s.halfEdges[twin].Face

	m := s.CreateVertex(s.Midpoint(h), len(s.vertices))

	a := s.CreateHalfEdge() // m -> r, face f1
	b := s.CreateHalfEdge() // r -> m, face f2
	c := s.CreateHalfEdge() // m -> q, face f2
	d := s.CreateHalfEdge() // q -> m, face f3
	e := s.CreateHalfEdge() // m -> s, face f3
	f := s.CreateHalfEdge() // s -> m, face f4

	f2 := s.CreateFace()
	f3 := s.CreateFace()

	s.halfEdges[a].Twin, s.halfEdges[a].Vertex, s.halfEdges[a].Face = b, rApex, f1
	s.halfEdges[b].Twin, s.halfEdges[b].Vertex, s.halfEdges[b].Face = a, m, f2
	s.halfEdges[c].Twin, s.halfEdges[c].Vertex, s.halfEdges[c].Face = d, s.halfEdges[h].Vertex, f2
	s.halfEdges[d].Twin, s.halfEdges[d].Vertex, s.halfEdges[d].Face = c, m, f3
	s.halfEdges[e].Twin, s.halfEdges[e].Vertex, s.halfEdges[e].Face = f, sApex, f3
	s.halfEdges[f].Twin, s.halfEdges[f].Vertex, s.halfEdges[f].Face = e, m, f4

	s.halfEdges[h].Vertex = m
	s.halfEdges[tr].Face = f2
	s.halfEdges[br].Face = f3

	s.setNext(h, a)
	s.setNext(a, tl)
	s.setNext(c, tr)
	s.setNext(tr, b)
	s.setNext(b, c)
	s.setNext(bl, f)
	s.setNext(f, twin)
	s.setNext(d, e)
	s.setNext(e, br)
	s.setNext(br, d)

	s.vertices[m].HalfEdge = a
	s.vertices[q].HalfEdge = d

	s.faces[f1].HalfEdge = h
	s.faces[f2].HalfEdge = c
	s.faces[f3].HalfEdge = d
	s.faces[f4].HalfEdge = twin

	return m
}

// SplitBoundary performs the boundary (1-face) split: the single bounded
// side of a boundary edge (p, q, r) is split into (p, m, r) and (m, q, r);
// the boundary half-edge itself is split into two boundary half-edges
// covering (q, m) and (m, p). The new vertex receives the boundary
// sentinel index.
func (s *Store) SplitBoundary(h HalfEdgeHandle) VertexHandle {
	inner := h
	if s.halfEdges[h].IsBoundary() {
		inner = s.halfEdges[h].Twin
	}

	twin := s.halfEdges[inner].Twin
	tr := s.halfEdges[inner].Next
	tl := s.halfEdges[tr].Next

	q := s.halfEdges[inner].Vertex
	rApex := s.halfEdges[tr].Vertex

	f1 := s.halfEdges[inner].Face

	m := s.CreateVertex(s.Midpoint(inner), BoundaryIndex)

	a := s.CreateHalfEdge()    // m -> r, face f1
	b := s.CreateHalfEdge()    // r -> m, face f2
	c := s.CreateHalfEdge()    // m -> q, face f2
	bound := s.CreateHalfEdge() // q -> m, boundary

	f2 := s.CreateFace()

	s.halfEdges[a].Twin, s.halfEdges[a].Vertex, s.halfEdges[a].Face = b, rApex, f1
	s.halfEdges[b].Twin, s.halfEdges[b].Vertex, s.halfEdges[b].Face = a, m, f2
	s.halfEdges[c].Twin, s.halfEdges[c].Vertex, s.halfEdges[c].Face = bound, s.halfEdges[inner].Vertex, f2
	s.halfEdges[bound].Twin, s.halfEdges[bound].Vertex, s.halfEdges[bound].Face = c, m, FaceHandle(Null)

	twinPrev := s.halfEdges[twin].Prev

	s.halfEdges[inner].Vertex = m
	s.halfEdges[tr].Face = f2

	s.setNext(inner, a)
	s.setNext(a, tl)
	s.setNext(c, tr)
	s.setNext(tr, b)
	s.setNext(b, c)
	s.setNext(twinPrev, bound)
	s.setNext(bound, twin)

	s.vertices[m].HalfEdge = a
	s.vertices[q].HalfEdge = bound

	s.faces[f1].HalfEdge = inner
	s.faces[f2].HalfEdge = c

	return m
}

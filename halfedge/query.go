package halfedge

import (
	"github.com/archmesh/remesh3d"
)

// Length computes the full 3-D Euclidean length of a half-edge.
func (s *Store) Length(h HalfEdgeHandle) float64 {
	dst := s.halfEdges[h].Vertex
	org := s.Origin(h)
	return s.vertices[dst].Point.Sub(s.vertices[org].Point).Mag()
}

// Origin returns the origin vertex of a half-edge (its twin's destination).
func (s *Store) Origin(h HalfEdgeHandle) VertexHandle {
	return s.halfEdges[s.halfEdges[h].Twin].Vertex
}

// Midpoint computes the componentwise average of a half-edge's endpoints.
func (s *Store) Midpoint(h HalfEdgeHandle) remesh3d.Vector {
	dst := s.halfEdges[h].Vertex
	org := s.Origin(h)
	return s.vertices[dst].Point.Add(s.vertices[org].Point).MulScalar(0.5)
}

// FaceNormal computes the un-normalized cross product of two triangle
// edges emanating from the origin of the face's first half-edge. Its
// magnitude is twice the triangle area.
func (s *Store) FaceNormal(f FaceHandle) remesh3d.Vector {
	edges := s.FaceHalfEdges(f)
	p0 := s.vertices[s.Origin(edges[0])].Point
	p1 := s.vertices[s.halfEdges[edges[0]].Vertex].Point
	p2 := s.vertices[s.halfEdges[edges[1]].Vertex].Point

	a := p1.Sub(p0)
	b := p2.Sub(p0)
	return a.Cross(b)
}

// VertexNormal is the (un-normalized) mean of FaceNormal over all
// incident bounded faces around v.
func (s *Store) VertexNormal(v VertexHandle) remesh3d.Vector {
	var sum remesh3d.Vector

	faces := s.OneRingFaces(v)
	for _, f := range faces {
		sum = sum.Add(s.FaceNormal(f))
	}

	if len(faces) == 0 {
		return sum
	}

	return sum.DivScalar(float64(len(faces)))
}

// IsBoundaryEdge returns true iff either side of the edge has no incident
// bounded face.
func (s *Store) IsBoundaryEdge(h HalfEdgeHandle) bool {
	he := s.halfEdges[h]
	return he.IsBoundary() || s.halfEdges[he.Twin].IsBoundary()
}

// HasBoundaryVertex returns true iff either endpoint carries the boundary
// sentinel index, or lower.
func (s *Store) HasBoundaryVertex(h HalfEdgeHandle) bool {
	dst := s.halfEdges[h].Vertex
	org := s.Origin(h)
	return s.vertices[dst].Index <= BoundaryIndex || s.vertices[org].Index <= BoundaryIndex
}

// IsBoundaryVertex reports whether any edge incident to v lies on the
// mesh boundary. Used by the relaxation driver to hold domain boundaries
// fixed, independent of the BoundaryIndex sentinel (which only marks
// vertices created by a boundary split, not every geometric boundary
// vertex of the input mesh).
func (s *Store) IsBoundaryVertex(v VertexHandle) bool {
	start := s.vertices[v].HalfEdge
	if start == HalfEdgeHandle(Null) {
		return false
	}

	cur := start
	for {
		if s.halfEdges[cur].IsBoundary() || s.halfEdges[s.halfEdges[cur].Twin].IsBoundary() {
			return true
		}

		cur = s.halfEdges[s.halfEdges[cur].Twin].Next
		if cur == start {
			break
		}
	}

	return false
}

// OneRingVertices enumerates the neighboring vertices of v, walking
// outgoing half-edges via .Twin.Next starting from v's stored half-edge.
func (s *Store) OneRingVertices(v VertexHandle) []VertexHandle {
	var out []VertexHandle

	start := s.vertices[v].HalfEdge
	if start == HalfEdgeHandle(Null) {
		return out
	}

	cur := start
	for {
		out = append(out, s.halfEdges[cur].Vertex)
		cur = s.halfEdges[s.halfEdges[cur].Twin].Next

		if cur == start {
			break
		}
	}

	return out
}

// OneRingFaces enumerates the incident bounded faces around v.
func (s *Store) OneRingFaces(v VertexHandle) []FaceHandle {
	var out []FaceHandle

	start := s.vertices[v].HalfEdge
	if start == HalfEdgeHandle(Null) {
		return out
	}

	cur := start
	for {
		if he := s.halfEdges[cur]; !he.IsBoundary() {
			out = append(out, he.Face)
		}

		cur = s.halfEdges[s.halfEdges[cur].Twin].Next

		if cur == start {
			break
		}
	}

	return out
}

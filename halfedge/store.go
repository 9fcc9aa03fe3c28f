package halfedge

import (
	"github.com/archmesh/remesh3d"
)

// Store is an arena of vertices, half-edges, and faces for a triangle
// half-edge mesh, addressed by stable integer handles. Split allocates,
// collapse removes, and a "removed" bitset per entity kind keeps removed
// handles out of the live-handle snapshots. Handles are never reused; the
// Vertex/HalfEdge/Face accessors do not check the bitset.
type Store struct {
	vertices   []Vertex
	halfEdges  []HalfEdge
	faces      []Face
	vRemoved   []bool
	eRemoved   []bool
	fRemoved   []bool
	liveV      int
	liveE      int
	liveF      int
}

// Construct a Store from an IndexedMesh. Returns ErrNonManifold if an edge
// is shared by more than two oriented half-edges. Every face is a triangle
// by construction, since IndexedMesh faces are index triples.
func NewStore(mesh remesh3d.IndexedMesh) (*Store, error) {
	s := &Store{
		vertices:  make([]Vertex, 0, mesh.NumVertices()),
		halfEdges: make([]HalfEdge, 0, 3*mesh.NumFaces()),
		faces:     make([]Face, 0, mesh.NumFaces()),
	}

	for i, p := range mesh.Vertices {
		s.vertices = append(s.vertices, Vertex{Point: p, HalfEdge: HalfEdgeHandle(Null), Index: i})
		s.vRemoved = append(s.vRemoved, false)
	}
	s.liveV = len(s.vertices)

	type edgeKey = [2]int
	shared := make(map[edgeKey]HalfEdgeHandle)
	consumed := make(map[edgeKey]bool)

	for _, face := range mesh.Faces {
		faceHandle := FaceHandle(len(s.faces))
		base := HalfEdgeHandle(len(s.halfEdges))

		s.faces = append(s.faces, Face{HalfEdge: base})
		s.fRemoved = append(s.fRemoved, false)

		for j := 0; j < 3; j++ {
			next := base + HalfEdgeHandle((j+1)%3)
			prev := base + HalfEdgeHandle((j+2)%3)
			origin := face[j]
			dest := face[(j+1)%3]

			s.halfEdges = append(s.halfEdges, HalfEdge{
				Next:   next,
				Prev:   prev,
				Twin:   HalfEdgeHandle(Null),
				Vertex: VertexHandle(dest),
				Face:   faceHandle,
			})
			s.eRemoved = append(s.eRemoved, false)

			cur := base + HalfEdgeHandle(j)
			s.vertices[origin].HalfEdge = cur

			lo, hi := origin, dest
			if lo > hi {
				lo, hi = hi, lo
			}
			key := edgeKey{lo, hi}

			if consumed[key] {
				return nil, remesh3d.ErrNonManifold
			}

			if twin, ok := shared[key]; ok {
				s.halfEdges[cur].Twin = twin
				s.halfEdges[twin].Twin = cur
				delete(shared, key)
				consumed[key] = true
			} else {
				shared[key] = cur
			}
		}
	}

	s.liveF = len(s.faces)
	s.liveE = len(s.halfEdges)

	s.closeBoundaryLoops(shared)

	return s, nil
}

// For every unmatched interior half-edge, synthesize its twin as a
// face-less boundary half-edge and link the boundary half-edges into
// closed loops under Next.
func (s *Store) closeBoundaryLoops(unmatched map[[2]int]HalfEdgeHandle) {
	if len(unmatched) == 0 {
		return
	}

	originOf := func(e HalfEdgeHandle) HalfEdgeHandle {
		return s.halfEdges[e].Prev
	}

	boundaryOf := make(map[HalfEdgeHandle]HalfEdgeHandle, len(unmatched))
	originMap := make(map[VertexHandle]HalfEdgeHandle, len(unmatched))

	for _, e := range unmatched {
		b := HalfEdgeHandle(len(s.halfEdges))
		origin := s.halfEdges[originOf(e)].Vertex

		s.halfEdges = append(s.halfEdges, HalfEdge{
			Next:   HalfEdgeHandle(Null),
			Prev:   HalfEdgeHandle(Null),
			Twin:   e,
			Vertex: origin,
			Face:   FaceHandle(Null),
		})
		s.eRemoved = append(s.eRemoved, false)

		s.halfEdges[e].Twin = b
		boundaryOf[e] = b
		originMap[s.halfEdges[e].Vertex] = b

		s.vertices[s.halfEdges[e].Vertex].HalfEdge = b
	}

	for _, b := range boundaryOf {
		next := originMap[s.halfEdges[b].Vertex]
		s.halfEdges[b].Next = next
		s.halfEdges[next].Prev = b
	}

	s.liveE = len(s.halfEdges)
}

// Allocate a new vertex with no outgoing half-edge.
func (s *Store) CreateVertex(p remesh3d.Vector, index int) VertexHandle {
	s.vertices = append(s.vertices, Vertex{Point: p, HalfEdge: HalfEdgeHandle(Null), Index: index})
	s.vRemoved = append(s.vRemoved, false)
	s.liveV++
	return VertexHandle(len(s.vertices) - 1)
}

// Allocate a new half-edge with null connectivity.
func (s *Store) CreateHalfEdge() HalfEdgeHandle {
	s.halfEdges = append(s.halfEdges, HalfEdge{
		Next:   HalfEdgeHandle(Null),
		Prev:   HalfEdgeHandle(Null),
		Twin:   HalfEdgeHandle(Null),
		Vertex: VertexHandle(Null),
		Face:   FaceHandle(Null),
	})
	s.eRemoved = append(s.eRemoved, false)
	s.liveE++
	return HalfEdgeHandle(len(s.halfEdges) - 1)
}

// Allocate a new face with no half-edge.
func (s *Store) CreateFace() FaceHandle {
	s.faces = append(s.faces, Face{HalfEdge: HalfEdgeHandle(Null)})
	s.fRemoved = append(s.fRemoved, false)
	s.liveF++
	return FaceHandle(len(s.faces) - 1)
}

// Mark a vertex unreachable. The handle must not be dereferenced afterward.
func (s *Store) RemoveVertex(h VertexHandle) {
	if !s.vRemoved[h] {
		s.vRemoved[h] = true
		s.liveV--
	}
}

// Mark a half-edge unreachable.
func (s *Store) RemoveHalfEdge(h HalfEdgeHandle) {
	if !s.eRemoved[h] {
		s.eRemoved[h] = true
		s.liveE--
	}
}

// Mark a face unreachable.
func (s *Store) RemoveFace(h FaceHandle) {
	if !s.fRemoved[h] {
		s.fRemoved[h] = true
		s.liveF--
	}
}

// Return true if the handle has been removed.
func (s *Store) IsVertexRemoved(h VertexHandle) bool { return s.vRemoved[h] }
func (s *Store) IsHalfEdgeRemoved(h HalfEdgeHandle) bool { return s.eRemoved[h] }
func (s *Store) IsFaceRemoved(h FaceHandle) bool { return s.fRemoved[h] }

// Dereference a vertex handle.
func (s *Store) Vertex(h VertexHandle) *Vertex {
	return &s.vertices[h]
}

// Dereference a half-edge handle.
func (s *Store) HalfEdge(h HalfEdgeHandle) *HalfEdge {
	return &s.halfEdges[h]
}

// Dereference a face handle.
func (s *Store) Face(h FaceHandle) *Face {
	return &s.faces[h]
}

// Get the number of live vertices.
func (s *Store) NumVertices() int { return s.liveV }

// Get the number of live half-edges.
func (s *Store) NumHalfEdges() int { return s.liveE }

// Get the number of live faces.
func (s *Store) NumFaces() int { return s.liveF }

// Enumerate the live vertex handles as a snapshot, safe to hold across
// subsequent Create*/Remove* calls.
func (s *Store) Vertices() []VertexHandle {
	out := make([]VertexHandle, 0, s.liveV)
	for i := range s.vertices {
		if !s.vRemoved[i] {
			out = append(out, VertexHandle(i))
		}
	}
	return out
}

// Enumerate the live half-edge handles as a snapshot.
func (s *Store) HalfEdges() []HalfEdgeHandle {
	out := make([]HalfEdgeHandle, 0, s.liveE)
	for i := range s.halfEdges {
		if !s.eRemoved[i] {
			out = append(out, HalfEdgeHandle(i))
		}
	}
	return out
}

// Enumerate the live face handles as a snapshot.
func (s *Store) Faces() []FaceHandle {
	out := make([]FaceHandle, 0, s.liveF)
	for i := range s.faces {
		if !s.fRemoved[i] {
			out = append(out, FaceHandle(i))
		}
	}
	return out
}

// Get the three half-edges of a face, in Next order starting from
// Face.HalfEdge.
func (s *Store) FaceHalfEdges(f FaceHandle) [3]HalfEdgeHandle {
	h0 := s.faces[f].HalfEdge
	h1 := s.halfEdges[h0].Next
	h2 := s.halfEdges[h1].Next
	return [3]HalfEdgeHandle{h0, h1, h2}
}

// Flatten the current connectivity into an IndexedMesh. Vertex and face
// order follows the live-handle snapshot order; vertex indices are renumbered
// densely starting at 0.
func (s *Store) Extract() remesh3d.IndexedMesh {
	liveVertices := s.Vertices()
	renumber := make(map[VertexHandle]int, len(liveVertices))
	points := make([]remesh3d.Vector, len(liveVertices))

	for i, v := range liveVertices {
		renumber[v] = i
		points[i] = s.vertices[v].Point
	}

	liveFaces := s.Faces()
	faces := make([][3]int, len(liveFaces))

	for i, f := range liveFaces {
		edges := s.FaceHalfEdges(f)
		for j, e := range edges {
			faces[i][j] = renumber[s.halfEdges[e].Vertex]
		}
	}

	return remesh3d.NewIndexedMesh(points, faces)
}

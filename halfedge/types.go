package halfedge

import (
	"github.com/archmesh/remesh3d"
)

// Null is the sentinel handle value meaning "no entity" (e.g. a half-edge's
// twin across a boundary loop, or a face-less boundary half-edge).
const Null = -1

// BoundaryIndex is the sentinel vertex index marking a vertex created by a
// boundary split; non-negative indices are either an index into the
// original IndexedMesh's vertex set, or (for vertices created by an
// interior split) the handle the vertex was allocated under — either way,
// non-negative means "not on the boundary".
const BoundaryIndex = -1

type (
	VertexHandle   int
	HalfEdgeHandle int
	FaceHandle     int
)

// Vertex is a point in space, an arbitrary outgoing half-edge, and an
// index identifying its provenance.
type Vertex struct {
	Point    remesh3d.Vector
	HalfEdge HalfEdgeHandle
	Index    int
}

// HalfEdge is a directed edge incident to at most one bounded face. Vertex
// names the half-edge's DESTINATION; its origin is Twin's destination
// (Twin.Vertex). Face is Null when the half-edge lies on the outer
// boundary loop. Prev is maintained explicitly rather than derived by
// walking Next twice, since split and collapse rewiring read it on the
// hot path.
type HalfEdge struct {
	Next   HalfEdgeHandle
	Prev   HalfEdgeHandle
	Twin   HalfEdgeHandle
	Vertex VertexHandle
	Face   FaceHandle
}

// Return true if the half-edge has no incident bounded face.
func (h HalfEdge) IsBoundary() bool {
	return h.Face == Null
}

// Face is a bounded triangular face, identified by any one of its three
// half-edges.
type Face struct {
	HalfEdge HalfEdgeHandle
}

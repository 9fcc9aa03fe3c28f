package halfedge

import (
	"testing"

	"github.com/archmesh/remesh3d"
	"github.com/stretchr/testify/assert"
)

func findInteriorHalfEdge(s *Store) HalfEdgeHandle {
	for _, h := range s.HalfEdges() {
		if !s.HalfEdge(h).IsBoundary() && !s.IsBoundaryEdge(h) {
			return h
		}
	}
	return HalfEdgeHandle(Null)
}

func findBoundedBoundaryHalfEdge(s *Store) HalfEdgeHandle {
	for _, h := range s.HalfEdges() {
		if !s.HalfEdge(h).IsBoundary() && s.IsBoundaryEdge(h) {
			return h
		}
	}
	return HalfEdgeHandle(Null)
}

func TestCheckSplitDecidesInteriorVsBoundary(t *testing.T) {
	s, err := NewStore(newSquareMesh())
	assert.NoError(t, err)

	sizing := remesh3d.ConstantSizingField(0.3)

	diagonal := findInteriorHalfEdge(s)
	assert.NotEqual(t, HalfEdgeHandle(Null), diagonal)
	assert.Equal(t, InteriorSplit, s.CheckSplit(diagonal, sizing))

	boundaryAdjacent := findBoundedBoundaryHalfEdge(s)
	assert.NotEqual(t, HalfEdgeHandle(Null), boundaryAdjacent)
	assert.Equal(t, BoundarySplit, s.CheckSplit(boundaryAdjacent, sizing))
}

func TestCheckSplitRejectsShortEdges(t *testing.T) {
	s, err := NewStore(newSquareMesh())
	assert.NoError(t, err)

	sizing := remesh3d.ConstantSizingField(10.0)
	diagonal := findInteriorHalfEdge(s)
	assert.Equal(t, NoSplit, s.CheckSplit(diagonal, sizing))
}

func TestSplitInteriorStructure(t *testing.T) {
	s, err := NewStore(newSquareMesh())
	assert.NoError(t, err)

	h := findInteriorHalfEdge(s)
	p := s.Origin(h)
	q := s.HalfEdge(h).Vertex
	beforeFaces, beforeEdges, beforeVerts := s.NumFaces(), s.NumHalfEdges(), s.NumVertices()

	m := s.Split(h)

	assert.Equal(t, beforeVerts+1, s.NumVertices())
	assert.Equal(t, beforeFaces+2, s.NumFaces())
	assert.Equal(t, beforeEdges+6, s.NumHalfEdges())

	// Every live face is still a consistent 3-cycle with matched twins.
	for _, f := range s.Faces() {
		edges := s.FaceHalfEdges(f)
		assert.Equal(t, edges[0], s.HalfEdge(edges[2]).Next)
		for _, e := range edges {
			twin := s.HalfEdge(e).Twin
			assert.Equal(t, e, s.HalfEdge(twin).Twin)
		}
	}

	ring := s.OneRingVertices(m)
	assert.Len(t, ring, 4)

	assertRingExcludesSelfAndDuplicates(t, s, p)
	assertRingExcludesSelfAndDuplicates(t, s, q)
}

// assertRingExcludesSelfAndDuplicates checks that v's one-ring contains no
// repeated vertex and never contains v itself, guarding against a stale
// Vertex.HalfEdge pointer left rooted at a vertex the split/collapse moved
// away from v.
func assertRingExcludesSelfAndDuplicates(t *testing.T, s *Store, v VertexHandle) {
	t.Helper()

	ring := s.OneRingVertices(v)
	seen := make(map[VertexHandle]bool, len(ring))
	for _, n := range ring {
		assert.NotEqual(t, v, n)
		assert.False(t, seen[n], "vertex %d appears twice in the one-ring of %d", n, v)
		seen[n] = true
	}
}

func TestSplitBoundaryStructure(t *testing.T) {
	s, err := NewStore(newSquareMesh())
	assert.NoError(t, err)

	h := findBoundedBoundaryHalfEdge(s)
	p := s.Origin(h)
	q := s.HalfEdge(h).Vertex
	beforeFaces, beforeEdges, beforeVerts := s.NumFaces(), s.NumHalfEdges(), s.NumVertices()

	m := s.SplitBoundary(h)

	assert.Equal(t, beforeVerts+1, s.NumVertices())
	assert.Equal(t, beforeFaces+1, s.NumFaces())
	assert.Equal(t, beforeEdges+4, s.NumHalfEdges())
	assert.Equal(t, BoundaryIndex, s.Vertex(m).Index)

	for _, f := range s.Faces() {
		edges := s.FaceHalfEdges(f)
		assert.Equal(t, edges[0], s.HalfEdge(edges[2]).Next)
	}

	// m sits on the boundary itself: at least one edge in its ring is a
	// boundary edge.
	onBoundary := 0
	cur := s.Vertex(m).HalfEdge
	start := cur
	for {
		if s.HalfEdge(cur).IsBoundary() || s.HalfEdge(s.HalfEdge(cur).Twin).IsBoundary() {
			onBoundary++
		}
		cur = s.HalfEdge(s.HalfEdge(cur).Twin).Next
		if cur == start {
			break
		}
	}
	assert.True(t, onBoundary >= 1)

	assertRingExcludesSelfAndDuplicates(t, s, p)
	assertRingExcludesSelfAndDuplicates(t, s, q)
}

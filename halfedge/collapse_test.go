package halfedge

import (
	"testing"

	"github.com/archmesh/remesh3d"
	"github.com/stretchr/testify/assert"
)

func TestCheckCollapseRatio(t *testing.T) {
	s, err := NewStore(newTetrahedronMesh())
	assert.NoError(t, err)

	h := s.HalfEdges()[0]
	assert.True(t, s.CheckCollapse(h, remesh3d.ConstantSizingField(10.0)))
	assert.False(t, s.CheckCollapse(h, remesh3d.ConstantSizingField(0.01)))
}

func TestCanCollapseConvexTetrahedron(t *testing.T) {
	s, err := NewStore(newTetrahedronMesh())
	assert.NoError(t, err)

	for _, h := range s.HalfEdges() {
		assert.True(t, s.CanCollapse(h))
	}
}

func TestSatisfiesLinkConditionTetrahedron(t *testing.T) {
	s, err := NewStore(newTetrahedronMesh())
	assert.NoError(t, err)

	for _, h := range s.HalfEdges() {
		assert.True(t, s.SatisfiesLinkCondition(h))
	}
}

func TestCollapseStructure(t *testing.T) {
	s, err := NewStore(newTetrahedronMesh())
	assert.NoError(t, err)

	h := s.HalfEdges()[0]
	origin := s.Origin(h)
	dest := s.HalfEdge(h).Vertex
	originPoint := s.Vertex(origin).Point

	beforeFaces, beforeEdges, beforeVerts := s.NumFaces(), s.NumHalfEdges(), s.NumVertices()

	survivor := s.Collapse(h)

	assert.Equal(t, dest, survivor)
	assert.Equal(t, originPoint, s.Vertex(survivor).Point)
	assert.Equal(t, beforeVerts-1, s.NumVertices())
	assert.Equal(t, beforeFaces-2, s.NumFaces())
	assert.Equal(t, beforeEdges-6, s.NumHalfEdges())
	assert.True(t, s.IsVertexRemoved(origin))

	for _, f := range s.Faces() {
		edges := s.FaceHalfEdges(f)
		assert.Equal(t, edges[0], s.HalfEdge(edges[2]).Next)
		for _, e := range edges {
			assert.False(t, s.IsHalfEdgeRemoved(e))
			assert.NotEqual(t, origin, s.HalfEdge(e).Vertex)
		}
	}

	for _, e := range s.HalfEdges() {
		twin := s.HalfEdge(e).Twin
		assert.Equal(t, e, s.HalfEdge(twin).Twin)
		assert.NotEqual(t, origin, s.HalfEdge(e).Vertex)
	}
}

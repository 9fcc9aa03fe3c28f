package spatial

import (
	"testing"

	"github.com/archmesh/remesh3d"
	"github.com/stretchr/testify/assert"
)

func gridOfTriangles(n int) []remesh3d.Triangle {
	triangles := make([]remesh3d.Triangle, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x, y := float64(i), float64(j)
			triangles = append(triangles, remesh3d.Triangle{
				P: remesh3d.NewVector(x, y, 0),
				Q: remesh3d.NewVector(x+1, y, 0),
				R: remesh3d.NewVector(x, y+1, 0),
			})
		}
	}
	return triangles
}

func TestOctreeInsertAndQuery(t *testing.T) {
	n := 5
	triangles := gridOfTriangles(n)

	bounds := remesh3d.NewAABBFromBounds(
		remesh3d.NewVector(-1, -1, -1),
		remesh3d.NewVector(float64(n)+1, float64(n)+1, 1),
	)
	octree := NewOctree(bounds)

	for _, tri := range triangles {
		assert.NoError(t, octree.Insert(tri))
	}

	assert.Equal(t, len(triangles), octree.NumItems())

	query := remesh3d.NewAABB(remesh3d.NewVector(0.5, 0.5, 0), remesh3d.NewVector(0.5, 0.5, 0.5))
	hits := octree.Query(query)
	assert.NotEmpty(t, hits)

	for _, idx := range hits {
		item := octree.Item(idx)
		assert.True(t, item.IntersectsAABB(query))
	}
}

func TestOctreeInsertOutOfBoundsFails(t *testing.T) {
	bounds := remesh3d.NewAABB(remesh3d.NewVector(0, 0, 0), remesh3d.NewVector(1, 1, 1))
	octree := NewOctree(bounds)

	tri := remesh3d.Triangle{
		P: remesh3d.NewVector(10, 10, 10),
		Q: remesh3d.NewVector(11, 10, 10),
		R: remesh3d.NewVector(10, 11, 10),
	}

	assert.ErrorIs(t, octree.Insert(tri), ErrOctreeItemNotInserted)
}

func TestOctreeSplitsOnOverflow(t *testing.T) {
	bounds := remesh3d.NewAABB(remesh3d.NewVector(0, 0, 0), remesh3d.NewVector(10, 10, 10))
	octree := NewOctree(bounds)

	for i := 0; i < OctreeMaxLeafItems+10; i++ {
		x := float64(i % 10)
		tri := remesh3d.Triangle{
			P: remesh3d.NewVector(x, x, x),
			Q: remesh3d.NewVector(x+0.1, x, x),
			R: remesh3d.NewVector(x, x+0.1, x),
		}
		assert.NoError(t, octree.Insert(tri))
	}

	assert.True(t, octree.NumNodes() > 1)
}

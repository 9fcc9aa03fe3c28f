// Package spatial provides an octree over axis-aligned bounding boxes,
// used to accelerate nearest-surface-point queries during tangential
// relaxation.
package spatial

import (
	"errors"

	"github.com/archmesh/remesh3d"
)

const (
	OctreeMaxDepth     = 21
	OctreeMaxLeafItems = 100
)

var (
	ErrOctreeItemNotInserted = errors.New("spatial: item not inserted")
	ErrOctreeCannotSplitNode = errors.New("spatial: cannot split node")
)

// Octree indexes arbitrary AABB-testable items (most commonly
// remesh3d.Triangle, the reference surface used by SurfaceProjector) over
// a bounded spatial region, splitting leaves that accumulate too many
// items.
type Octree struct {
	nodes map[uint64]*OctreeNode
	items []remesh3d.IntersectsAABB
}

// Construct a bounded octree.
func NewOctree(aabb remesh3d.AABB) *Octree {
	return &Octree{
		nodes: map[uint64]*OctreeNode{1: NewOctreeNode(1, aabb)},
		items: make([]remesh3d.IntersectsAABB, 0),
	}
}

// Get the number of items inserted into the octree.
func (o *Octree) NumItems() int {
	return len(o.items)
}

// Get the number of nodes (leaf and internal) in the octree.
func (o *Octree) NumNodes() int {
	return len(o.nodes)
}

// Insert an item into the octree.
func (o *Octree) Insert(item remesh3d.IntersectsAABB) error {
	var code uint64

	codes := []uint64{}
	queue := []uint64{1}
	index := len(o.items)

	for len(queue) > 0 {
		code, queue = queue[0], queue[1:]
		node := o.nodes[code]

		if item.IntersectsAABB(node.aabb) {
			if node.isLeaf {
				codes = append(codes, code)
			} else {
				children := node.Children()
				queue = append(queue, children...)
			}
		}
	}

	if len(codes) == 0 {
		return ErrOctreeItemNotInserted
	}

	o.items = append(o.items, item)

	for _, code := range codes {
		node := o.nodes[code]
		node.items = append(node.items, index)

		if node.shouldSplit() {
			o.Split(code)
		}
	}

	return nil
}

// Split a leaf octree node into its eight octant children.
func (o *Octree) Split(code uint64) error {
	node := o.nodes[code]

	if !node.canSplit() {
		return ErrOctreeCannotSplitNode
	}

	for octant, childCode := range node.Children() {
		aabb := node.aabb.Octant(octant)
		childNode := NewOctreeNode(childCode, aabb)

		for _, index := range node.items {
			if o.items[index].IntersectsAABB(aabb) {
				childNode.items = append(childNode.items, index)
			}
		}

		o.nodes[childCode] = childNode
	}

	clear(node.items)
	node.isLeaf = false

	return nil
}

// Query returns the indices (into insertion order) of every item whose
// AABB overlaps the query box, deduplicated across leaves.
func (o *Octree) Query(query remesh3d.AABB) []int {
	seen := make(map[int]bool)
	queue := []uint64{1}

	for len(queue) > 0 {
		var code uint64
		code, queue = queue[0], queue[1:]
		node := o.nodes[code]

		if !node.aabb.IntersectsAABB(query) {
			continue
		}

		if node.isLeaf {
			for _, index := range node.items {
				if o.items[index].IntersectsAABB(query) {
					seen[index] = true
				}
			}
			continue
		}

		queue = append(queue, node.Children()...)
	}

	out := make([]int, 0, len(seen))
	for index := range seen {
		out = append(out, index)
	}
	return out
}

// Item returns the item stored at the given index, as returned by Query.
func (o *Octree) Item(index int) remesh3d.IntersectsAABB {
	return o.items[index]
}

package remesh3d

// IndexedMesh is a flat indexed-triangle mesh: an ordered sequence of
// points plus an ordered sequence of vertex-index triples. A halfedge.Store
// is constructed from one and can flatten back into one.
type IndexedMesh struct {
	Vertices []Vector
	Faces    [][3]int
}

// Construct an IndexedMesh from its vertices and faces.
func NewIndexedMesh(vertices []Vector, faces [][3]int) IndexedMesh {
	return IndexedMesh{Vertices: vertices, Faces: faces}
}

// Get the number of vertices.
func (m IndexedMesh) NumVertices() int {
	return len(m.Vertices)
}

// Get the number of faces.
func (m IndexedMesh) NumFaces() int {
	return len(m.Faces)
}

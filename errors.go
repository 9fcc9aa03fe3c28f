package remesh3d

import "errors"

var (
	// The input mesh has an edge shared by more than two oriented
	// half-edges, so a consistent half-edge structure cannot be built.
	ErrNonManifold = errors.New("remesh3d: non-manifold mesh")

	// A face in the input mesh is not a triangle.
	ErrNonTriangularFace = errors.New("remesh3d: non-triangular face")

	// The OBJ source describes a malformed vertex line.
	ErrInvalidVertex = errors.New("remesh3d: invalid vertex")

	// The OBJ source describes a malformed face line.
	ErrInvalidFace = errors.New("remesh3d: invalid face")
)
